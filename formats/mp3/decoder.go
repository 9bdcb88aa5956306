// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audfx/audio"
)

// mp3Reader is the slice of gomp3.Decoder the source needs, kept as an
// interface so tests can substitute a fake stream.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source adapts a go-mp3 decoder to audio.Source. go-mp3 hands out 16-bit
// little-endian PCM bytes and always two channels (mono streams are upmixed
// by the library), so the sample conversion here is fixed.
type source struct {
	dec        mp3Reader
	sampleRate int
	pcm        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.pcm) / 2 } // sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	// Two bytes of PCM per float32 sample.
	need := len(dst) * 2
	if cap(s.pcm) < need {
		s.pcm = make([]byte, need)
	}
	s.pcm = s.pcm[:need]

	n, err := s.dec.Read(s.pcm)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.pcm[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		pcm:        make([]byte, 8192),
	}, nil
}
