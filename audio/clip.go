// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Clip is a fully decoded PCM stream held in memory: interleaved float32
// samples at a fixed sample rate. Unlike Source it is seekable, so a
// playback transport can read arbitrary frame ranges (and wrap around for
// looping) without touching the decoder again.
//
// A Clip is immutable after construction and safe for concurrent readers.
type Clip struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewClip wraps interleaved samples in a Clip. The sample count must be a
// multiple of channels; trailing remainder samples are dropped.
func NewClip(sampleRate, channels int, samples []float32) *Clip {
	if channels < 1 {
		channels = 1
	}
	samples = samples[:len(samples)-len(samples)%channels]

	return &Clip{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
	}
}

func (c *Clip) SampleRate() int { return c.sampleRate }
func (c *Clip) Channels() int   { return c.channels }

// Frames returns the total frame count (samples per channel).
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.sampleRate == 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.sampleRate)
}

// ReadAt copies interleaved samples starting at the given frame into dst
// and returns the number of frames copied. Short reads happen at the end
// of the clip; a frame outside [0, Frames()) yields 0. dst length should
// be a multiple of the channel count.
func (c *Clip) ReadAt(dst []float32, frame int) int {
	if frame < 0 || frame >= c.Frames() {
		return 0
	}

	want := len(dst) / c.channels
	have := c.Frames() - frame
	if want > have {
		want = have
	}

	copy(dst, c.samples[frame*c.channels:(frame+want)*c.channels])
	return want
}

// ReadAll drains src into a Clip and closes it. The source's full stream is
// decoded up front; file loading runs on a control thread where blocking is
// fine, and the transport then serves the audio thread from memory alone.
func ReadAll(src Source) (*Clip, error) {
	defer src.Close()

	channels := src.Channels()
	samples := make([]float32, 0, src.SampleRate()*channels) // ~1 second head start
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return NewClip(src.SampleRate(), channels, samples), nil
}
