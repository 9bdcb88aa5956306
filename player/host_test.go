// SPDX-License-Identifier: EPL-2.0

package player

import (
	"sync"
	"testing"

	"github.com/ik5/audfx/fx"
)

// gainEffect scales blocks by a gain that only takes effect through
// UpdateParameters, mirroring how real effects stage parameter edits.
type gainEffect struct {
	level *fx.Slider

	gain float32
	spec fx.ProcessSpec

	panicOnPrepare bool
	panicOnProcess bool

	prepares   int
	recomputes int
}

func newGainEffect() *gainEffect {
	return &gainEffect{level: fx.NewSlider("Level", 0, 10, 0, 1.0)}
}

func (g *gainEffect) Parameters() []fx.Parameter { return []fx.Parameter{g.level} }

func (g *gainEffect) Prepare(spec fx.ProcessSpec) {
	g.prepares++
	if g.panicOnPrepare {
		panic("bad prepare")
	}
	g.spec = spec
	g.gain = float32(g.level.Value())
}

func (g *gainEffect) Reset() {}

func (g *gainEffect) UpdateParameters() {
	g.recomputes++
	g.gain = float32(g.level.Value())
}

func (g *gainEffect) Process(block []float32) {
	if g.panicOnProcess {
		panic("bad block")
	}
	for i := range block {
		block[i] *= g.gain
	}
}

// speedEffect additionally drives playback rate.
type speedEffect struct {
	gainEffect
	rate float64
}

func (s *speedEffect) PlaybackRate() float64 { return s.rate }

func newHostChain(effect fx.Effect) (*Host, *rampSource) {
	src := &rampSource{sampleRate: 44100, channels: 1}
	rs := NewResampler(src, 44100)
	h := NewHost(effect, rs)
	h.Prepare(44100, 64, 1)
	return h, src
}

func TestHost_ProcessAppliesEffect(t *testing.T) {
	t.Parallel()

	eff := newGainEffect()
	eff.level.Set(2.0)
	h, _ := newHostChain(eff)

	dst := make([]float32, 16)
	h.ProcessBlock(dst)

	// The ramp comes through the resampler as f+1, doubled by the effect
	for f, v := range dst {
		if want := float32(2 * (f + 1)); v != want {
			t.Fatalf("dst[%d] = %v, want %v", f, v, want)
		}
	}
}

func TestHost_NilEffectPassthrough(t *testing.T) {
	t.Parallel()

	h, _ := newHostChain(nil)

	dst := make([]float32, 8)
	h.ProcessBlock(dst)

	if dst[0] != 1 || dst[7] != 8 {
		t.Errorf("dst = %v, want untouched ramp", dst)
	}
}

func TestHost_RecomputeVisibleToNextBlock(t *testing.T) {
	t.Parallel()

	eff := newGainEffect()
	h, _ := newHostChain(eff)

	dst := make([]float32, 4)
	h.ProcessBlock(dst)
	if dst[0] != 1 {
		t.Fatalf("dst[0] = %v at unity gain, want 1", dst[0])
	}

	// An edit alone changes nothing until the recompute lands
	eff.level.Set(3.0)
	h.ProcessBlock(dst)
	if dst[0] != 5 { // ramp continues at 5, gain still 1
		t.Fatalf("dst[0] = %v before recompute, want 5", dst[0])
	}

	h.RequestParameterRecompute()
	h.ProcessBlock(dst)
	if dst[0] != 27 { // frame 9 at gain 3
		t.Errorf("dst[0] = %v after recompute, want 27", dst[0])
	}
}

func TestHost_ProcessPanicYieldsSilence(t *testing.T) {
	t.Parallel()

	eff := newGainEffect()
	eff.panicOnProcess = true
	h, _ := newHostChain(eff)

	dst := make([]float32, 8)
	h.ProcessBlock(dst) // must not propagate the panic

	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %v after faulted block, want silence", i, v)
		}
	}

	// The chain recovers once the effect stops faulting
	eff.panicOnProcess = false
	h.ProcessBlock(dst)
	if dst[0] == 0 {
		t.Error("expected audio to resume after the fault clears")
	}
}

func TestHost_PreparePanicDisablesProcessing(t *testing.T) {
	t.Parallel()

	eff := newGainEffect()
	eff.level.Set(2.0)
	eff.panicOnPrepare = true

	src := &rampSource{sampleRate: 44100, channels: 1}
	h := NewHost(eff, NewResampler(src, 44100))
	h.Prepare(44100, 64, 1)

	// Unprepared host still pulls audio but skips the effect
	dst := make([]float32, 4)
	h.ProcessBlock(dst)
	if dst[0] != 1 {
		t.Errorf("dst[0] = %v, want unprocessed ramp value 1", dst[0])
	}
}

func TestHost_RecomputePushesPlaybackRate(t *testing.T) {
	t.Parallel()

	eff := &speedEffect{rate: 2.0}
	eff.level = fx.NewSlider("Level", 0, 10, 0, 1.0)

	src := &rampSource{sampleRate: 44100, channels: 1}
	rs := NewResampler(src, 44100)
	h := NewHost(eff, rs)
	h.Prepare(44100, 64, 1)

	h.RequestParameterRecompute()

	if got := rs.Ratio(); got != 2.0 {
		t.Errorf("Ratio() = %v after recompute, want 2.0", got)
	}

	// A non-positive declared rate leaves the ratio alone
	eff.rate = 0
	h.RequestParameterRecompute()
	if got := rs.Ratio(); got != 2.0 {
		t.Errorf("Ratio() = %v after zero-rate recompute, want 2.0", got)
	}
}

func TestHost_ConcurrentRecomputeAndProcess(t *testing.T) {
	t.Parallel()

	eff := newGainEffect()
	h, _ := newHostChain(eff)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		dst := make([]float32, 64)
		for {
			select {
			case <-stop:
				return
			default:
				h.ProcessBlock(dst)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			eff.level.Set(float64(i % 10))
			h.RequestParameterRecompute()
		}
		close(stop)
	}()

	wg.Wait()
}
