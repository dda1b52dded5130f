// Package clock drives the once-per-second game tick from outside the engine.
//
// A Driver runs one ticker at a time. Every Start begins a new generation and
// stops the previous one; ticks carry their generation so the consumer can
// drop a tick that was already queued when its game ended or was replaced.
package clock

import (
	"context"
	"sync"
	"time"
)

// Tick is one elapsed interval of a running generation.
type Tick struct {
	Generation uint64
	At         time.Time
}

// Driver delivers ticks on C until stopped.
type Driver struct {
	interval time.Duration
	ticks    chan Tick

	mu      sync.Mutex
	gen     uint64
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped driver that ticks every interval once started.
func New(interval time.Duration) *Driver {
	return &Driver{
		interval: interval,
		ticks:    make(chan Tick, 1),
	}
}

// C returns the channel ticks are delivered on.
func (d *Driver) C() <-chan Tick {
	return d.ticks
}

// Start stops any running generation and starts a new one.
// It returns the new generation number.
func (d *Driver) Start(ctx context.Context) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.gen++
	gen := d.gen
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.running = true

	go d.run(runCtx, gen, done)
	return gen
}

// Stop halts the running generation, if any, and waits for its goroutine to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if !d.running {
		return
	}
	d.cancel()
	<-d.done
	d.running = false
	d.cancel = nil
	d.done = nil
}

// Running reports whether a generation is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Stale reports whether t belongs to a stopped or superseded generation.
func (d *Driver) Stale(t Tick) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.running || t.Generation != d.gen
}

func (d *Driver) run(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			select {
			case d.ticks <- Tick{Generation: gen, At: now}:
			case <-ctx.Done():
				return
			}
		}
	}
}
