// SPDX-License-Identifier: EPL-2.0

package player

import (
	"sync"

	"github.com/ik5/audfx/fx"
)

// Host owns one effect instance and the audio lock that serializes the
// real-time process path against asynchronous parameter application.
// Both sides hold the lock only for bounded work: one block of DSP on
// the audio thread, plain arithmetic on the control side. A recompute
// that finishes before a ProcessBlock call is visible to that call;
// one racing an in-flight block waits and lands on the next block, so a
// block never sees a half-applied parameter set.
//
// Faults inside the effect (panics from malformed coefficients and the
// like) are absorbed here: the affected block comes out as silence and
// nothing propagates further up the pull chain.
type Host struct {
	mtx sync.Mutex // the audio lock

	effect    fx.Effect
	resampler *Resampler
	prepared  bool
}

// NewHost wires effect to pull from resampler. The effect may be nil,
// in which case blocks pass through untouched.
func NewHost(effect fx.Effect, resampler *Resampler) *Host {
	return &Host{
		effect:    effect,
		resampler: resampler,
	}
}

// Effect returns the hosted effect.
func (h *Host) Effect() fx.Effect { return h.effect }

// Prepare rebuilds the effect's processing state for a new stream
// format. Must be called again whenever the device rate, block size or
// channel count changes.
func (h *Host) Prepare(sampleRate float64, blockFrames, channels int) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.prepared = h.guarded(func() {
		if h.effect != nil {
			h.effect.Prepare(fx.ProcessSpec{
				SampleRate:  sampleRate,
				BlockFrames: blockFrames,
				Channels:    channels,
			})
		}
	})
}

// Reset clears the effect's processing tails (delay lines, filter
// memory) without changing the prepared format.
func (h *Host) Reset() {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.effect != nil && h.prepared {
		h.guarded(h.effect.Reset)
	}
}

// ProcessBlock pulls one block from the resampler into dst, then runs
// the effect on it in place under the audio lock. Called from the audio
// thread once per device block.
func (h *Host) ProcessBlock(dst []float32) {
	if h.resampler != nil {
		h.resampler.PullBlock(dst)
	}

	if h.effect == nil {
		return
	}

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if !h.prepared {
		return
	}

	if !h.guarded(func() { h.effect.Process(dst) }) {
		clear(dst) // degraded output instead of a fault on the audio thread
	}
}

// RequestParameterRecompute applies pending parameter edits: under the
// audio lock it lets the effect derive fresh coefficients, then pushes
// the effect's playback rate, if it declares one, into the resampler.
// Called from the parameter bridge on its own goroutine.
func (h *Host) RequestParameterRecompute() {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.effect == nil {
		return
	}

	h.guarded(h.effect.UpdateParameters)

	if rc, ok := h.effect.(fx.PlaybackRateController); ok && h.resampler != nil {
		if rate := rc.PlaybackRate(); rate > 0 {
			h.resampler.SetRatioOverride(rate)
		}
	}
}

// guarded runs fn, converting a panic into a false return.
func (h *Host) guarded(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	fn()
	return true
}
