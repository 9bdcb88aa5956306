// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// Float32ToBytesLE appends src to dst as little-endian IEEE-754 float32
// bytes, the layout audio devices expect for FormatFloat32LE streams.
// It returns the extended slice; pass dst[:0] to reuse its capacity.
func Float32ToBytesLE(src []float32, dst []byte) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}

	return dst
}
