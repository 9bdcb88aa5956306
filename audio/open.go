// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenClip opens the file at uri, decodes it with a decoder from reg and
// returns the whole stream as a Clip. When channels > 0 the decoded audio
// is remapped to that channel count (see ChannelMapper); otherwise the
// source's own layout is kept.
//
// The decoder is picked by file extension first. If the extension matches
// no registered format, or that decoder rejects the data, every registered
// decoder is probed before giving up.
//
// Errors: ErrUnreadable when the file cannot be opened or read,
// ErrUnsupportedFormat when no decoder accepts the stream. Both wrap the
// underlying cause.
func OpenClip(reg *Registry, uri string, channels int) (*Clip, error) {
	f, err := os.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(uri), "."))

	if dec, ok := reg.Get(ext); ok {
		clip, err := decodeClip(dec, f, channels)
		if err == nil {
			return clip, nil
		}
	}

	// Unknown or lying extension: probe every registered decoder.
	for _, format := range reg.Formats() {
		if format == ext {
			continue // already tried
		}
		dec, ok := reg.Get(format)
		if !ok {
			continue
		}

		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}

		clip, err := decodeClip(dec, f, channels)
		if err == nil {
			return clip, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, uri)
}

func decodeClip(dec Decoder, r io.ReadSeeker, channels int) (*Clip, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ReadAll(NewChannelMapper(src, channels))
}
