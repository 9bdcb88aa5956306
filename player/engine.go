// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/fx"
	"github.com/ik5/audfx/utils"
)

// Config parameterizes an Engine. Zero fields take defaults.
type Config struct {
	// SampleRate of the output device in Hz. Default 44100.
	SampleRate int

	// Channels of the output device. Default 2.
	Channels int

	// BlockFrames per processing block. Default 512.
	BlockFrames int

	// Registry of format decoders used by Load.
	Registry *audio.Registry

	// Effect hosted on the pull chain. May be nil for plain playback.
	Effect fx.Effect
}

func (c *Config) fillDefaults() {
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.Channels <= 0 {
		c.Channels = 2
	}
	if c.BlockFrames <= 0 {
		c.BlockFrames = 512
	}
	if c.Registry == nil {
		c.Registry = audio.NewRegistry()
	}
}

// Engine is the playback core: it wires Transport → Resampler → Host
// into one pull chain and exposes it as an io.Reader of little-endian
// float32 PCM, the shape a device sink consumes. Everything the device
// does not pull lives on the control side: Load, the transport verbs,
// and the parameter bridge.
type Engine struct {
	cfg Config

	// mtx serializes Read against chain swaps (Load, SetFormat). A
	// Load holding it has fully quiesced the device pull path.
	mtx sync.Mutex

	transport *Transport
	resampler *Resampler
	host      *Host
	bridge    *fx.Bridge

	block   []float32
	byteBuf []byte
	pending []byte

	loadGen atomic.Int64
	closed  atomic.Bool
}

// NewEngine builds an engine. Close releases its parameter bridge.
func NewEngine(cfg Config) *Engine {
	cfg.fillDefaults()

	e := &Engine{cfg: cfg}

	e.transport = NewTransport(cfg.Channels)
	e.resampler = NewResampler(e.transport, cfg.SampleRate)
	e.host = NewHost(cfg.Effect, e.resampler)
	e.host.Prepare(float64(cfg.SampleRate), cfg.BlockFrames, cfg.Channels)

	e.bridge = fx.NewBridge(e.host)
	if cfg.Effect != nil {
		e.bridge.Register(cfg.Effect.Parameters()...)
	}

	e.allocBuffers()

	return e
}

func (e *Engine) allocBuffers() {
	e.block = make([]float32, e.cfg.BlockFrames*e.cfg.Channels)
	e.byteBuf = make([]byte, 0, len(e.block)*4)
	e.pending = nil
}

// Load opens and decodes the file at uri, then swaps it in as the
// current session: playback stops, the resampler and effect state are
// rebuilt for the new clip, and pending parameter values are reapplied.
// On any error the previous session stays untouched, position included.
//
// Decoding can be slow and runs without any engine lock held. When a
// newer Load starts in the meantime the older result is discarded and
// ErrLoadSuperseded returned (last load wins).
func (e *Engine) Load(uri string) error {
	if e.closed.Load() {
		return ErrClosed
	}

	gen := e.loadGen.Add(1)

	clip, err := audio.OpenClip(e.cfg.Registry, uri, e.cfg.Channels)
	if err != nil {
		return fmt.Errorf("load %s: %w", uri, err)
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.loadGen.Load() != gen {
		return ErrLoadSuperseded
	}

	// The device pull path is quiescent while mtx is held; swap the
	// whole session before it can observe anything half-built.
	looping := e.transport.Looping()
	e.transport.Load(clip)
	e.transport.SetLooping(looping)

	e.resampler.SetIntrinsicRate(clip.SampleRate())
	e.resampler.SetRatioOverride(0)
	e.resampler.Reset()

	e.host.Prepare(float64(e.cfg.SampleRate), e.cfg.BlockFrames, e.cfg.Channels)
	e.host.RequestParameterRecompute()

	e.pending = nil

	return nil
}

// SetFormat adapts the engine to a changed device format, rebuilding
// the resampler state, block buffers and effect state together. The
// loaded clip is kept; its position rewinds to the start.
func (e *Engine) SetFormat(sampleRate, blockFrames int) {
	if sampleRate <= 0 || blockFrames <= 0 {
		return
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.cfg.SampleRate = sampleRate
	e.cfg.BlockFrames = blockFrames

	if clip := e.transport.Clip(); clip != nil {
		looping := e.transport.Looping()
		e.transport.Load(clip)
		e.transport.SetLooping(looping)
	}

	e.resampler.SetOutputRate(sampleRate)
	e.resampler.Reset()

	e.host.Prepare(float64(sampleRate), blockFrames, e.cfg.Channels)
	e.host.RequestParameterRecompute()

	e.allocBuffers()
}

// Play starts playback of the loaded session; no-op when nothing is
// loaded. Playing from the end rewinds first.
func (e *Engine) Play() { e.transport.Play() }

// Stop halts playback and rewinds to the start.
func (e *Engine) Stop() {
	e.transport.Stop()
	e.transport.Seek(0)
}

// TogglePlay flips between Play and Stop.
func (e *Engine) TogglePlay() {
	if e.transport.Playing() {
		e.Stop()
	} else {
		e.Play()
	}
}

// Playing reports the transport state; it turns false by itself when a
// non-looping clip runs out.
func (e *Engine) Playing() bool { return e.transport.Playing() }

func (e *Engine) SetLooping(loop bool) { e.transport.SetLooping(loop) }
func (e *Engine) Looping() bool        { return e.transport.Looping() }

// Seek moves the playback position, clamped to the clip bounds.
func (e *Engine) Seek(seconds float64) { e.transport.Seek(seconds) }

// Position returns the playback position in seconds of source material.
func (e *Engine) Position() float64 { return e.transport.Position() }

// Duration returns the loaded clip's length in seconds.
func (e *Engine) Duration() float64 { return e.transport.Duration() }

// Parameters lists the hosted effect's controls, empty without an effect.
func (e *Engine) Parameters() []fx.Parameter {
	if e.cfg.Effect == nil {
		return nil
	}
	return e.cfg.Effect.Parameters()
}

// Parameter looks up a control by name.
func (e *Engine) Parameter(name string) (fx.Parameter, bool) {
	return e.bridge.Parameter(name)
}

// Ratio exposes the effective resampling ratio, mainly for inspection.
func (e *Engine) Ratio() float64 { return e.resampler.Ratio() }

// Read produces little-endian float32 PCM at the device rate, one
// processed block at a time. It never returns io.EOF: a stopped or
// empty engine produces silence, so the device keeps a steady cadence.
// This is the method the device sink's callback path drives.
func (e *Engine) Read(p []byte) (int, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	n := 0
	for n < len(p) {
		if len(e.pending) == 0 {
			e.host.ProcessBlock(e.block)
			e.pending = utils.Float32ToBytesLE(e.block, e.byteBuf[:0])
		}

		c := copy(p[n:], e.pending)
		e.pending = e.pending[c:]
		n += c
	}

	return n, nil
}

// Close stops playback and releases the parameter bridge. The engine
// produces silence afterwards.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}

	e.transport.Stop()
	e.bridge.Close()

	return nil
}
