// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// Decoding is built on github.com/go-audio/aiff and supports PCM data at
// 8, 16, 24 and 32 bits per sample, mono or multi-channel, at any sample
// rate. AIFF stores samples big-endian; the decoder normalizes everything
// to float32 in [-1.0, 1.0], so callers never see the byte order.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio needs an io.ReadSeeker; inputs that cannot seek are buffered
// in memory first.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The PCM bit depth is not 8/16/24/32
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// AIFF-C compressed files (.aifc) are not supported. Writing is not
// supported either; for output use the wav package.
package aiff
