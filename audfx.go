// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"fmt"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/aiff"
	"github.com/ik5/audfx/formats/mp3"
	"github.com/ik5/audfx/formats/vorbis"
	"github.com/ik5/audfx/formats/wav"
)

// DefaultRegistry returns a registry with every bundled format decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Open decodes the audio file at uri into a seekable clip using the
// default registry, keeping the file's own channel layout. It is the
// quick path for callers that don't manage their own registry:
//
//	clip, err := audfx.Open("track.mp3")
//	if err != nil { ... }
//	fmt.Println(clip.Duration())
//
// Failures are audio.ErrUnreadable or audio.ErrUnsupportedFormat.
func Open(uri string) (*audio.Clip, error) {
	clip, err := audio.OpenClip(DefaultRegistry(), uri, 0)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}
