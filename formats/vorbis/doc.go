// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis. Vorbis files carry
// their own channel count and sample rate; the decoder exposes both and
// yields float32 samples in [-1.0, 1.0].
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Multichannel output is interleaved frame by frame, so a stereo stream
// reads as [L0, R0, L1, R1, ...]. Use audio.NewChannelMapper to change
// the layout:
//
//	mono := audio.NewChannelMapper(source, 1)
//
// Vorbis encoding is not supported (decoding only). To write decoded
// audio to disk, convert the float32 samples with utils.Float32ToInt16
// and use wav.WriteWAV16.
package vorbis
