// SPDX-License-Identifier: EPL-2.0

package pitchshift

import (
	"math"

	"github.com/ik5/audfx/fx"
	"github.com/ik5/audfx/utils"
)

// delayLength is the per-channel delay line size in frames. Must be a
// power of two large enough that the two taps stay half a line apart.
const delayLength = 4096

// Shifter transposes audio by a whole number of semitones using a
// dual-tap modulated delay line: both taps glide through the line at the
// pitch ratio and are crossfaded with a sine window so neither is
// audible while it crosses the write pointer. Interpolation between
// delay samples is cubic.
//
// Two controls are exposed: Pitch (semitones up, 0..12) and Speed
// (0.25x..2x), the latter driving the host's playback rate through the
// fx.PlaybackRateController capability rather than processing here.
type Shifter struct {
	pitch  *fx.Slider
	speed  *fx.Slider
	params []fx.Parameter

	sampleRate float64
	channels   int

	// shiftRatio is the tap read speed relative to the write speed;
	// 1.0 means no transposition.
	shiftRatio float64

	lines    [][]float32
	writePos int
	phase    float64 // first tap's delay behind writePos, in [0, delayLength)
}

func New() *Shifter {
	s := &Shifter{
		pitch:      fx.NewSlider("Pitch", 0.0, 12.0, 1.0, 0.0),
		speed:      fx.NewSlider("Speed", 0.25, 2.0, 0.25, 1.0),
		shiftRatio: 1.0,
	}
	s.params = []fx.Parameter{s.pitch, s.speed}

	return s
}

// Pitch returns the transposition control in semitones.
func (s *Shifter) Pitch() *fx.Slider { return s.pitch }

// Speed returns the playback rate control.
func (s *Shifter) Speed() *fx.Slider { return s.speed }

func (s *Shifter) Parameters() []fx.Parameter { return s.params }

// PlaybackRate implements fx.PlaybackRateController.
func (s *Shifter) PlaybackRate() float64 { return s.speed.Value() }

func (s *Shifter) Prepare(spec fx.ProcessSpec) {
	s.sampleRate = spec.SampleRate
	s.channels = spec.Channels

	s.lines = make([][]float32, spec.Channels)
	for c := range s.lines {
		s.lines[c] = make([]float32, delayLength)
	}
	s.writePos = 0
	s.phase = 0

	s.UpdateParameters()
}

func (s *Shifter) Reset() {
	for c := range s.lines {
		clear(s.lines[c])
	}
	s.writePos = 0
	s.phase = 0
}

func (s *Shifter) UpdateParameters() {
	if s.sampleRate == 0 {
		return
	}

	s.shiftRatio = math.Exp2(s.pitch.Value() / 12.0)
}

func (s *Shifter) Process(block []float32) {
	if s.channels == 0 || len(s.lines) < s.channels {
		return
	}

	frames := len(block) / s.channels

	for f := 0; f < frames; f++ {
		base := f * s.channels

		for c := 0; c < s.channels; c++ {
			s.lines[c][s.writePos] = block[base+c]
		}

		// Two taps half a line apart; the sine window silences each
		// tap as its delay approaches 0 or the full line length.
		d1 := s.phase
		d2 := math.Mod(s.phase+delayLength/2, delayLength)
		g1 := float32(math.Sin(math.Pi * d1 / delayLength))
		g2 := float32(math.Sin(math.Pi * d2 / delayLength))

		for c := 0; c < s.channels; c++ {
			block[base+c] = g1*s.tap(c, d1) + g2*s.tap(c, d2)
		}

		s.writePos++
		if s.writePos == delayLength {
			s.writePos = 0
		}

		// Taps glide through the line at shiftRatio relative to the
		// write pointer.
		s.phase += 1.0 - s.shiftRatio
		if s.phase < 0 {
			s.phase += delayLength
		} else if s.phase >= delayLength {
			s.phase -= delayLength
		}
	}
}

// tap reads the channel's delay line delay frames behind the write
// pointer, cubically interpolated.
func (s *Shifter) tap(c int, delay float64) float32 {
	line := s.lines[c]

	pos := float64(s.writePos) - delay
	idx := int(math.Floor(pos))
	frac := float32(pos - math.Floor(pos))

	i0 := (idx - 1 + 2*delayLength) % delayLength
	i1 := (idx + 2*delayLength) % delayLength
	i2 := (i1 + 1) % delayLength
	i3 := (i1 + 2) % delayLength

	return utils.CubicInterpolate(line[i0], line[i1], line[i2], line[i3], frac)
}
