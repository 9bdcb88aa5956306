// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMapper adapts a source's channel count to a fixed target layout:
// multi-channel input is downmixed by averaging, mono input is fanned out
// to every target channel. Sample rate is untouched.
type ChannelMapper struct {
	src      Source
	channels int
	tmp      []float32
}

// NewChannelMapper wraps src so it reads as a channels-wide stream.
// When the source already matches, src itself is returned.
func NewChannelMapper(src Source, channels int) Source {
	if channels < 1 || src.Channels() == channels {
		return src
	}

	return &ChannelMapper{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (m *ChannelMapper) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMapper) Channels() int   { return m.channels }
func (m *ChannelMapper) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMapper) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMapper) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	srcChannels := m.src.Channels()
	frames := len(dst) / m.channels
	samplesNeeded := frames * srcChannels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	srcFrames := n / srcChannels

	switch {
	case srcChannels == 1:
		// Fan mono out to every target channel
		for f := range srcFrames {
			v := m.tmp[f]
			base := f * m.channels
			for c := range m.channels {
				dst[base+c] = v
			}
		}
	case m.channels == 1 && srcChannels == 2:
		// Stereo downmix (most common)
		for f := range srcFrames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		// Generic path: average to mono, then fan out
		invChannels := float32(1.0) / float32(srcChannels)
		for f := range srcFrames {
			sum := float32(0)
			baseIdx := f * srcChannels
			for c := range srcChannels {
				sum += m.tmp[baseIdx+c]
			}
			v := sum * invChannels
			base := f * m.channels
			for c := range m.channels {
				dst[base+c] = v
			}
		}
	}

	return srcFrames * m.channels, err
}
