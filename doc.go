// SPDX-License-Identifier: EPL-2.0

// Package audfx plays audio files through a pluggable DSP effect stage.
//
// The library is split by concern:
//
//   - audio    - decoder-facing Source interface, decoded Clip, registry
//   - formats  - wav, mp3, vorbis and aiff decoders
//   - player   - transport, resampler, effect host and the pull engine
//   - fx       - effect and parameter contracts plus the control bridge
//   - device   - speaker output
//
// This package ties them together with a default decoder registry and a
// one-call Open. For playback, wire a player.Engine to a device.Sink:
//
//	eng, err := player.NewEngine(player.Config{
//		Registry: audfx.DefaultRegistry(),
//		Effect:   pitchshift.New(),
//	})
//	if err != nil { ... }
//	defer eng.Close()
//
//	if err := eng.Load("track.ogg"); err != nil { ... }
//
//	sink, err := device.NewSink(44100, 2, eng)
//	if err != nil { ... }
//	defer sink.Close()
//
//	eng.Play()
//	sink.Start()
package audfx
