// SPDX-License-Identifier: EPL-2.0

package player

import (
	"sync"

	"github.com/ik5/audfx/utils"
)

// BlockSource is the upstream of a Resampler: a real-time producer that
// always fills the requested block, padding with silence when it has
// nothing to play. Transport implements it.
type BlockSource interface {
	SampleRate() int
	Channels() int
	PullBlock(dst []float32) int
}

// Resampler converts its upstream's intrinsic sample rate to the output
// device rate using cubic interpolation over a 4-frame window. The
// interpolator state carries across calls, so consecutive blocks join
// without boundary artifacts.
//
// The conversion ratio counts source frames consumed per output frame.
// It normally derives from intrinsicRate/outputRate; SetRatioOverride
// replaces it entirely, which is how a varispeed control drives playback
// speed. Ratio changes are picked up at the next pulled block, never
// mid-block.
type Resampler struct {
	src      BlockSource
	channels int

	// rateMtx guards the rate fields, written from the control side
	// while the audio thread pulls. Held for a few loads per block.
	rateMtx       sync.Mutex
	intrinsicRate float64
	outputRate    float64
	override      float64 // 0 = no override

	// Ring of 4 frames around the read position:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float32
	pos    float64 // fractional position between frames[1] and frames[2]
	primed bool

	// Buffered upstream input, refilled a chunk at a time so the
	// transport lock is not taken once per frame.
	in       []float32
	inFrames int
	inPos    int
}

const resampleChunkFrames = 256

// NewResampler wraps src, producing blocks at outputRate.
func NewResampler(src BlockSource, outputRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:           src,
		channels:      channels,
		intrinsicRate: float64(src.SampleRate()),
		outputRate:    float64(outputRate),
		in:            make([]float32, resampleChunkFrames*channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.outputRate) }
func (r *Resampler) Channels() int   { return r.channels }

// SetIntrinsicRate declares the upstream's sample rate. Called when a
// newly loaded clip changes the source rate.
func (r *Resampler) SetIntrinsicRate(rate int) {
	r.rateMtx.Lock()
	defer r.rateMtx.Unlock()

	r.intrinsicRate = float64(rate)
}

// SetOutputRate declares the device rate downstream.
func (r *Resampler) SetOutputRate(rate int) {
	r.rateMtx.Lock()
	defer r.rateMtx.Unlock()

	r.outputRate = float64(rate)
}

// SetRatioOverride replaces the rate-derived ratio with an explicit
// source-frames-per-output-frame value. Values <= 0 clear the override.
// Takes effect on the next pulled block; already produced samples are
// untouched.
func (r *Resampler) SetRatioOverride(ratio float64) {
	r.rateMtx.Lock()
	defer r.rateMtx.Unlock()

	if ratio <= 0 {
		r.override = 0
		return
	}
	r.override = ratio
}

// Ratio returns the effective conversion ratio: the override when set,
// otherwise intrinsicRate/outputRate (1.0 while either rate is unknown).
func (r *Resampler) Ratio() float64 {
	r.rateMtx.Lock()
	defer r.rateMtx.Unlock()

	return r.ratioLocked()
}

func (r *Resampler) ratioLocked() float64 {
	if r.override > 0 {
		return r.override
	}
	if r.intrinsicRate <= 0 || r.outputRate <= 0 {
		return 1.0
	}
	return r.intrinsicRate / r.outputRate
}

// Reset discards interpolator and input-buffer state. Called when the
// upstream stream is replaced so stale frames cannot bleed into the new
// clip's first block.
func (r *Resampler) Reset() {
	for i := range r.frames {
		clear(r.frames[i])
	}
	r.pos = 0
	r.primed = false
	r.inFrames = 0
	r.inPos = 0
}

// PullBlock fills dst at the output rate and returns the frame count
// (always the full block; upstream pads silence). dst length should be
// a multiple of the channel count.
func (r *Resampler) PullBlock(dst []float32) int {
	r.rateMtx.Lock()
	ratio := r.ratioLocked()
	r.rateMtx.Unlock()

	if !r.primed {
		for i := range r.frames {
			r.fetchFrame(r.frames[i])
		}
		r.primed = true
	}

	frames := len(dst) / r.channels

	for f := 0; f < frames; f++ {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			r.shiftFrame()
		}

		alpha := float32(r.pos)
		base := f * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], alpha)
		}

		r.pos += ratio
	}

	return frames
}

// shiftFrame advances the 4-frame ring by one upstream frame.
func (r *Resampler) shiftFrame() {
	first := r.frames[0]
	r.frames[0] = r.frames[1]
	r.frames[1] = r.frames[2]
	r.frames[2] = r.frames[3]
	r.frames[3] = first
	r.fetchFrame(r.frames[3])
}

// fetchFrame copies the next upstream frame into dst, pulling a fresh
// chunk from the source when the input buffer runs dry.
func (r *Resampler) fetchFrame(dst []float32) {
	if r.inPos >= r.inFrames {
		r.src.PullBlock(r.in)
		r.inFrames = len(r.in) / r.channels
		r.inPos = 0
	}

	copy(dst, r.in[r.inPos*r.channels:(r.inPos+1)*r.channels])
	r.inPos++
}
