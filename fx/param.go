// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"
	"sync/atomic"
)

// Parameter is a named, range-bound control owned by an effect. Values
// are written from a control thread and read from the host's recompute
// step, so implementations store them atomically.
type Parameter interface {
	Name() string

	// setNotify installs the bridge's change hook. Registration only.
	setNotify(fn func())
}

// Slider is a continuous parameter over [min, max] with an optional step
// quantum. Out-of-range writes are clamped to the nearest bound.
type Slider struct {
	name     string
	min, max float64
	step     float64
	bits     atomic.Uint64
	notify   func()
}

// NewSlider builds a slider named name over [min, max], quantized to
// step (0 disables quantization), starting at initial.
func NewSlider(name string, min, max, step, initial float64) *Slider {
	s := &Slider{
		name: name,
		min:  min,
		max:  max,
		step: step,
	}
	s.bits.Store(math.Float64bits(s.clamp(initial)))

	return s
}

func (s *Slider) Name() string { return s.name }
func (s *Slider) Min() float64 { return s.min }
func (s *Slider) Max() float64 { return s.max }

// Value returns the current setting.
func (s *Slider) Value() float64 {
	return math.Float64frombits(s.bits.Load())
}

// Set stores v, clamped to the slider's range and snapped to its step
// quantum. The change notification fires only when the stored value
// actually changed.
func (s *Slider) Set(v float64) {
	v = s.clamp(v)

	old := s.bits.Swap(math.Float64bits(v))
	if math.Float64frombits(old) == v {
		return
	}

	if s.notify != nil {
		s.notify()
	}
}

func (s *Slider) setNotify(fn func()) { s.notify = fn }

func (s *Slider) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.min
	}
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

// Choice is a discrete parameter over a fixed option list. Writes with
// an unknown index are rejected and the prior selection is retained.
type Choice struct {
	name    string
	options []string
	index   atomic.Int32
	notify  func()
}

// NewChoice builds a choice named name over options, selecting
// options[initial] (0 when initial is out of range).
func NewChoice(name string, options []string, initial int) *Choice {
	c := &Choice{
		name:    name,
		options: options,
	}
	if initial >= 0 && initial < len(options) {
		c.index.Store(int32(initial))
	}

	return c
}

func (c *Choice) Name() string { return c.name }

// Options returns the selectable values.
func (c *Choice) Options() []string { return c.options }

// Selected returns the current option index.
func (c *Choice) Selected() int {
	return int(c.index.Load())
}

// SelectedOption returns the current option text.
func (c *Choice) SelectedOption() string {
	return c.options[c.Selected()]
}

// Set selects options[i]. Unknown indices are ignored; the prior value
// stays in place and no notification fires.
func (c *Choice) Set(i int) {
	if i < 0 || i >= len(c.options) {
		return
	}

	old := c.index.Swap(int32(i))
	if int(old) == i {
		return
	}

	if c.notify != nil {
		c.notify()
	}
}

func (c *Choice) setNotify(fn func()) { c.notify = fn }
