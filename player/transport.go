// SPDX-License-Identifier: EPL-2.0

package player

import (
	"sync"

	"github.com/ik5/audfx/audio"
)

// Transport owns the playback position and the play/stop/loop state for
// one loaded clip. Control methods run on the control thread; PullBlock
// runs on the audio thread. The internal mutex is held only for bounded
// work (flag flips and one block's worth of copying), never across I/O.
type Transport struct {
	mtx sync.Mutex

	clip     *audio.Clip
	channels int

	frame   int
	playing bool
	looping bool
}

// NewTransport builds a transport producing channels-wide blocks.
// Silence is produced until a clip is loaded.
func NewTransport(channels int) *Transport {
	if channels < 1 {
		channels = 1
	}

	return &Transport{channels: channels}
}

// Load replaces the current clip. Playback stops and the position
// rewinds to the start; the previous clip is simply dropped. The clip's
// channel count must match the transport's.
func (t *Transport) Load(clip *audio.Clip) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clip = clip
	t.frame = 0
	t.playing = false
}

// Clip returns the loaded clip, or nil.
func (t *Transport) Clip() *audio.Clip {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.clip
}

// Play starts playback. Without a clip it is a no-op; with the position
// at or past the end (or negative) it rewinds to the start first.
func (t *Transport) Play() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.clip == nil {
		return
	}

	if t.frame >= t.clip.Frames() || t.frame < 0 {
		t.frame = 0
	}
	t.playing = true
}

// Stop halts playback, keeping the current position.
func (t *Transport) Stop() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.playing = false
}

// Playing reports whether the transport is currently producing clip
// audio. It flips to false on its own when the end of a non-looping
// clip is reached.
func (t *Transport) Playing() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.playing
}

func (t *Transport) SetLooping(loop bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.looping = loop
}

func (t *Transport) Looping() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.looping
}

// Seek moves the position to seconds, clamped to [0, duration).
func (t *Transport) Seek(seconds float64) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.clip == nil {
		return
	}

	frame := int(seconds * float64(t.clip.SampleRate()))
	if frame < 0 {
		frame = 0
	}
	if frame >= t.clip.Frames() {
		frame = t.clip.Frames() - 1
	}
	if frame < 0 {
		frame = 0
	}
	t.frame = frame
}

// Position returns the current position in seconds.
func (t *Transport) Position() float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.clip == nil || t.clip.SampleRate() == 0 {
		return 0
	}

	return float64(t.frame) / float64(t.clip.SampleRate())
}

// Duration returns the loaded clip's length in seconds, 0 when empty.
func (t *Transport) Duration() float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.clip == nil {
		return 0
	}

	return t.clip.Duration()
}

// SampleRate returns the loaded clip's intrinsic rate, 0 when empty.
func (t *Transport) SampleRate() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.clip == nil {
		return 0
	}

	return t.clip.SampleRate()
}

func (t *Transport) Channels() int { return t.channels }

// PullBlock fills dst with interleaved samples and returns the number of
// frames that came from the clip; the remainder of dst is silence. When
// looping, the read position wraps instead of coming up short. When not
// looping, hitting the end silence-fills the rest and stops playback.
func (t *Transport) PullBlock(dst []float32) int {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if !t.playing || t.clip == nil {
		clear(dst)
		return 0
	}

	want := len(dst) / t.channels
	got := 0

	for got < want {
		n := t.clip.ReadAt(dst[got*t.channels:want*t.channels], t.frame)
		got += n
		t.frame += n

		if got == want {
			break
		}

		if !t.looping {
			clear(dst[got*t.channels:])
			t.playing = false
			break
		}

		t.frame = 0

		if t.clip.Frames() == 0 {
			clear(dst[got*t.channels:])
			break
		}
	}

	return got
}
