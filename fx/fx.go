// SPDX-License-Identifier: EPL-2.0

package fx

// ProcessSpec describes the stream an effect will be asked to process.
// A new spec means new effect state: Prepare rebuilds everything derived
// from rate, block size or channel count.
type ProcessSpec struct {
	SampleRate  float64
	BlockFrames int
	Channels    int
}

// Effect is a DSP processor that transforms interleaved float32 blocks
// in place. Implementations are driven by a host which serializes every
// call below behind its audio lock, so effects need no locking of their
// own, but Process runs on the audio thread and must not allocate or
// block on I/O.
type Effect interface {
	// Prepare reconstructs internal state for the given stream format.
	// Called before the first Process and again whenever the format changes.
	Prepare(spec ProcessSpec)

	// Process transforms one interleaved block in place.
	Process(block []float32)

	// Reset clears processing state (delay lines, filter memory) while
	// keeping the prepared format.
	Reset()

	// UpdateParameters reads the current parameter values and derives
	// processing coefficients from them. Bounded work only: arithmetic,
	// no allocation, no I/O.
	UpdateParameters()

	// Parameters lists the effect's tunable controls.
	Parameters() []Parameter
}

// PlaybackRateController is implemented by effects that want to drive
// the playback rate of the stream feeding them, such as a time-stretch
// or varispeed control. Hosts read the rate after each parameter update
// and forward it to their resampling stage. A declared capability, not a
// parameter-name convention, so any effect can opt in explicitly.
type PlaybackRateController interface {
	// PlaybackRate returns the desired source-frames-per-output-frame
	// rate. Values <= 0 leave the host's natural rate in place.
	PlaybackRate() float64
}
