// SPDX-License-Identifier: EPL-2.0

// Package fx defines the pluggable effect contract and its parameter model.
//
// An Effect is a block processor with a small fixed capability set:
//
//	type Effect interface {
//	    Prepare(spec ProcessSpec)
//	    Process(block []float32)
//	    Reset()
//	    UpdateParameters()
//	    Parameters() []Parameter
//	}
//
// Effects are hosted, not freestanding: a host (see the player package)
// owns the effect instance, serializes every call behind its audio lock,
// and re-Prepares the effect whenever the stream format changes.
//
// # Parameters
//
// Controls come in two kinds. Slider is a continuous range with clamping;
// Choice is a discrete option list that rejects unknown selections:
//
//	gain := fx.NewSlider("Gain", 0.0, 2.0, 0.01, 1.0)
//	mode := fx.NewChoice("Mode", []string{"Soft", "Hard"}, 0)
//
// Values are stored atomically: the control thread writes them at any
// time, and the effect reads them inside UpdateParameters.
//
// # The Bridge
//
// A Bridge connects edited parameters to the host. Each successful value
// change raises a one-slot signal; the bridge's goroutine turns any burst
// of signals into a single RequestParameterRecompute on the host:
//
//	bridge := fx.NewBridge(host)
//	bridge.Register(effect.Parameters()...)
//	defer bridge.Close()
//
// # Driving Playback Rate
//
// An effect that wants to control how fast the source is consumed (a
// varispeed or time-stretch stage) additionally implements
// PlaybackRateController. The host queries the rate after each parameter
// update and pushes it into its resampler.
package fx
