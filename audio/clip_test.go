// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audfx/internal/audiotest"
)

func TestNewClip_DropsRemainder(t *testing.T) {
	t.Parallel()

	// 7 samples at 2 channels: trailing odd sample is dropped
	clip := NewClip(44100, 2, make([]float32, 7))

	if clip.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", clip.Frames())
	}
}

func TestClip_Duration(t *testing.T) {
	t.Parallel()

	clip := NewClip(8000, 1, make([]float32, 4000))

	if got := clip.Duration(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Duration() = %v, want 0.5", got)
	}

	empty := NewClip(0, 1, nil)
	if got := empty.Duration(); got != 0 {
		t.Errorf("Duration() of zero-rate clip = %v, want 0", got)
	}
}

func TestClip_ReadAt(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20) // 10 stereo frames
	for i := range samples {
		samples[i] = float32(i)
	}
	clip := NewClip(44100, 2, samples)

	buf := make([]float32, 8) // 4 frames

	if n := clip.ReadAt(buf, 2); n != 4 {
		t.Fatalf("ReadAt(2) = %d frames, want 4", n)
	}
	if buf[0] != 4 || buf[7] != 11 {
		t.Errorf("ReadAt(2) copied [%v..%v], want [4..11]", buf[0], buf[7])
	}

	// Short read at the end
	if n := clip.ReadAt(buf, 8); n != 2 {
		t.Errorf("ReadAt(8) = %d frames, want 2", n)
	}

	// Out of range
	if n := clip.ReadAt(buf, 10); n != 0 {
		t.Errorf("ReadAt(10) = %d frames, want 0", n)
	}
	if n := clip.ReadAt(buf, -1); n != 0 {
		t.Errorf("ReadAt(-1) = %d frames, want 0", n)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 6000, 0.25)

	clip, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if clip.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", clip.SampleRate())
	}
	if clip.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", clip.Channels())
	}
	if clip.Frames() != 6000 {
		t.Errorf("Frames() = %d, want 6000", clip.Frames())
	}

	buf := make([]float32, 2)
	clip.ReadAt(buf, 5999)
	if buf[0] != 0.25 || buf[1] != 0.25 {
		t.Errorf("last frame = %v, want [0.25 0.25]", buf)
	}
}

type failingSource struct{}

var errBadStream = errors.New("bad stream")

func (f *failingSource) ReadSamples(dst []float32) (int, error) { return 0, errBadStream }
func (f *failingSource) SampleRate() int                        { return 8000 }
func (f *failingSource) Channels() int                          { return 1 }
func (f *failingSource) BufSize() int                           { return 4096 }
func (f *failingSource) Close() error                           { return nil }

func TestReadAll_Error(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(&failingSource{})
	if !errors.Is(err, errBadStream) {
		t.Errorf("ReadAll error = %v, want wrapped errBadStream", err)
	}
}

func TestReadAll_EmptySource(t *testing.T) {
	t.Parallel()

	clip, err := ReadAll(audiotest.NewSilentSource(44100, 1, 0))
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadAll: %v", err)
	}
	if clip.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", clip.Frames())
	}
}
