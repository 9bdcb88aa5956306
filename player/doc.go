// SPDX-License-Identifier: EPL-2.0

// Package player implements the real-time playback core: a pull chain
// of Transport → Resampler → Host driven block-by-block from the device
// callback, plus an Engine that assembles the chain and feeds a device
// sink through io.Reader.
//
// # Threads
//
// Two execution contexts touch this package. The audio thread calls
// Engine.Read at device cadence; it must never block for unbounded time
// or allocate. The control thread calls everything else: Load (which
// may take as long as decoding takes), the transport verbs, and
// parameter edits, which arrive through the fx.Bridge and are applied
// by Host.RequestParameterRecompute under the same short-hold lock that
// Host.ProcessBlock takes around the effect. A recompute finishing
// before a block is visible to that block; one racing it lands on the
// next block, never partially inside one.
//
// # Typical Use
//
//	shifter := pitchshift.New()
//	engine := player.NewEngine(player.Config{
//	    Registry: reg,
//	    Effect:   shifter,
//	})
//	defer engine.Close()
//
//	if err := engine.Load("track.wav"); err != nil { ... }
//	engine.Play()
//
//	sink, err := device.NewSink(44100, 2, engine)
//	sink.Start()
//
// # Load Semantics
//
// Load classifies failures as audio.ErrUnreadable or
// audio.ErrUnsupportedFormat and leaves the previous session untouched
// on any error. Overlapping loads follow last-load-wins: an older load
// finishing late is discarded with ErrLoadSuperseded.
package player
