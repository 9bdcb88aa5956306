// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio stream primitives.
//
// This package contains the building blocks the rest of the module is
// composed from:
//   - Source interface for streamed audio input
//   - Clip for fully decoded, seekable PCM audio
//   - ChannelMapper for channel-layout conversion
//   - Format registry for decoder registration
//   - OpenClip for registry-driven file loading
//
// # Source Interface
//
// The Source interface is the foundation of audio decoding:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, letting them feed any
// consumer that understands interleaved float32 samples.
//
// # Clips
//
// A Clip is a Source drained into memory. It supports random access by
// frame, which is what a playback transport needs for seeking and looping:
//
//	clip, err := audio.ReadAll(source)
//	buf := make([]float32, 512*clip.Channels())
//	frames := clip.ReadAt(buf, 44100) // read starting 1s in (at 44.1kHz)
//
// # Channel Mapping
//
// ChannelMapper converts between channel layouts, averaging when mixing
// down and fanning out when widening:
//
//	stereo := audio.NewChannelMapper(monoSource, 2)
//
// # Loading Files
//
// OpenClip ties the pieces together: it opens a file, picks a decoder from
// a Registry (extension first, then probing), and returns the decoded Clip:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	clip, err := audio.OpenClip(reg, "track.wav", 2)
//
// Load failures are classified as ErrUnreadable (I/O) or
// ErrUnsupportedFormat (no decoder matched); match them with errors.Is.
package audio
