// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which emits 16-bit
// stereo PCM at the file's sample rate regardless of the source channel
// layout (mono streams are upmixed by the library). The decoder converts
// that byte stream to float32 samples in [-1.0, 1.0].
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Output is always two channels; use audio.NewChannelMapper to change
// the layout:
//
//	mono := audio.NewChannelMapper(source, 1)
//
// MP3 encoding is not supported (decoding only). To write decoded audio
// to disk, convert the float32 samples with utils.Float32ToInt16 and use
// wav.WriteWAV16.
package mp3
