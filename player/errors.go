// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrLoadSuperseded reports that a newer Load started while this one
	// was decoding; its result was discarded and the newer load wins.
	ErrLoadSuperseded = errors.New("load superseded by a newer load")

	// ErrClosed reports use of an engine after Close.
	ErrClosed = errors.New("engine is closed")
)
