// SPDX-License-Identifier: EPL-2.0

// Package device drives the output device. It wraps ebitengine/oto: the
// platform audio layer pulls little-endian float32 PCM from an
// io.Reader at its own cadence, which makes any player.Engine directly
// attachable as the source.
package device

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// Sink is the output-device end of the pull chain. The device thread
// reads from src at real-time cadence once Start is called.
//
// The underlying audio context is process-global: create one Sink per
// process.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewSink opens the default output device at the given format and
// attaches src as the sample source. Playback starts paused.
func NewSink(sampleRate, channels int, src io.Reader) (*Sink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Sink{
		ctx:    ctx,
		player: ctx.NewPlayer(src),
	}, nil
}

// Start begins pulling from the source at device cadence.
func (s *Sink) Start() { s.player.Play() }

// Pause stops pulling without releasing the device.
func (s *Sink) Pause() { s.player.Pause() }

// Running reports whether the device is currently pulling.
func (s *Sink) Running() bool { return s.player.IsPlaying() }

// Err returns the device's sticky error, if any. A non-nil value means
// the device gave up; the caller should stop playback and surface it.
func (s *Sink) Err() error {
	if err := s.player.Err(); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	return nil
}

// Close releases the device player.
func (s *Sink) Close() error {
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("closing audio device: %w", err)
	}
	return nil
}
