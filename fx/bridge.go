// SPDX-License-Identifier: EPL-2.0

package fx

import "sync"

// Recomputer receives the bridge's coalesced change signal. Implemented
// by the effect host.
type Recomputer interface {
	RequestParameterRecompute()
}

// Bridge marshals parameter edits from the control thread into a single
// recompute signal. Every registered parameter reports its changes here;
// the bridge coalesces bursts through a one-slot channel, so a batch of
// simultaneous edits collapses into one recompute pass instead of one
// per control. The recompute itself runs on the bridge's own goroutine,
// never on the thread that edited the value.
type Bridge struct {
	target Recomputer

	mtx    sync.Mutex
	params map[string]Parameter

	pending   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewBridge starts a bridge delivering to target. Close releases it.
func NewBridge(target Recomputer) *Bridge {
	b := &Bridge{
		target:  target,
		params:  make(map[string]Parameter),
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	b.wg.Add(1)
	go b.run()

	return b
}

// Register hooks parameters up to the bridge. A parameter registered
// twice (or two parameters sharing a name) keeps the last registration.
func (b *Bridge) Register(params ...Parameter) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	for _, p := range params {
		p.setNotify(b.Notify)
		b.params[p.Name()] = p
	}
}

// Parameter looks a registered parameter up by name, for control
// surfaces that address controls symbolically.
func (b *Bridge) Parameter(name string) (Parameter, bool) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	p, ok := b.params[name]
	return p, ok
}

// Notify requests one recompute pass. Non-blocking: if a pass is already
// pending the signal folds into it.
func (b *Bridge) Notify() {
	select {
	case b.pending <- struct{}{}:
	default:
	}
}

// Close stops delivery. Edits after Close are stored in the parameters
// but no longer trigger recomputes.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
}

func (b *Bridge) run() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case <-b.pending:
			b.target.RequestParameterRecompute()
		}
	}
}
