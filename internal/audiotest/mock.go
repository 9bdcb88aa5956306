// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory sources for decoder and pipeline
// tests, with sample values computed by a caller-supplied function so test
// cases can assert exact output.
package audiotest

import "io"

// Waveform computes the value for one sample, given its frame index and
// channel.
type Waveform func(frame, channel int) float32

// MockSource generates a finite stream of frames. It satisfies audio.Source
// without importing that package, which keeps it usable from the audio
// package's own tests.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       Waveform
}

// NewMockSource returns a source producing frames frames of wave output.
func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewSilentSource returns a source producing all-zero frames.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource returns a source where every sample has the same value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	if left := m.frames - m.pos; want > left {
		want = left
	}

	for f := range want {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += want

	n := want * m.channels
	if m.pos >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
