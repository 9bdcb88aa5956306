// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// Load taxonomy for OpenClip: the input could not be read at all, or no
	// registered decoder understood it. Callers keep their prior state either way.
	ErrUnreadable        = errors.New("audio input is unreadable")
	ErrUnsupportedFormat = errors.New("no decoder matches the audio format")
)
