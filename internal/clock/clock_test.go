package clock

import (
	"context"
	"testing"
	"time"
)

const testInterval = 5 * time.Millisecond

// receive waits for the next tick or fails the test.
func receive(t *testing.T, d *Driver) Tick {
	t.Helper()
	select {
	case tick := <-d.C():
		return tick
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tick")
		return Tick{}
	}
}

func TestDriverTicks(t *testing.T) {
	d := New(testInterval)
	defer d.Stop()

	gen := d.Start(context.Background())
	if !d.Running() {
		t.Fatal("Running() = false after Start()")
	}

	for i := 0; i < 3; i++ {
		tick := receive(t, d)
		if tick.Generation != gen {
			t.Errorf("tick generation = %d, want %d", tick.Generation, gen)
		}
		if d.Stale(tick) {
			t.Error("tick of the running generation should not be stale")
		}
	}
}

func TestDriverStopMakesTicksStale(t *testing.T) {
	d := New(testInterval)
	d.Start(context.Background())

	tick := receive(t, d)
	d.Stop()

	if d.Running() {
		t.Error("Running() = true after Stop()")
	}
	if !d.Stale(tick) {
		t.Error("tick should be stale after Stop()")
	}

	// Stop is idempotent
	d.Stop()
}

func TestDriverRestartSupersedesGeneration(t *testing.T) {
	d := New(testInterval)
	defer d.Stop()

	first := d.Start(context.Background())
	old := receive(t, d)

	second := d.Start(context.Background())
	if second == first {
		t.Fatalf("Start() should return a new generation, got %d twice", first)
	}
	if !d.Stale(old) {
		t.Error("tick from the superseded generation should be stale")
	}

	// Drain until a tick of the new generation arrives; a buffered old tick may come first
	for {
		tick := receive(t, d)
		if tick.Generation == second {
			break
		}
		if !d.Stale(tick) {
			t.Errorf("old tick %d should be stale", tick.Generation)
		}
	}
}

func TestDriverStopsWithParentContext(t *testing.T) {
	d := New(testInterval)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	receive(t, d)

	cancel()
	// Drain a tick that may already be buffered, then expect silence
	select {
	case <-d.C():
	case <-time.After(20 * testInterval):
	}
	select {
	case tick := <-d.C():
		t.Errorf("unexpected tick %+v after parent context was cancelled", tick)
	case <-time.After(20 * testInterval):
	}
	d.Stop()
}
