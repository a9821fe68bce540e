package timer

import "testing"

func TestTickFiresWithRemainingSeconds(t *testing.T) {
	c := New()
	var ticks []int
	c.OnTick(func(remaining int) { ticks = append(ticks, remaining) })

	c.Start(4)
	c.Tick()
	c.Tick()
	c.Tick()

	want := []int{3, 2, 1}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %d, want %d", i, ticks[i], want[i])
		}
	}
}

func TestExpireFiresExactlyOnce(t *testing.T) {
	c := New()
	expires := 0
	c.OnExpire(func() { expires++ })

	c.Start(2)
	c.Tick()
	c.Tick() // reaches zero
	c.Tick() // past zero: no-op
	c.Tick()

	if expires != 1 {
		t.Errorf("expire fired %d times, want 1", expires)
	}
	if c.Running() {
		t.Error("countdown still running after expiry")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.Remaining())
	}
}

func TestStopSuppressesExpiry(t *testing.T) {
	c := New()
	expired := false
	c.OnExpire(func() { expired = true })

	c.Start(1)
	c.Stop()
	c.Tick()

	if expired {
		t.Error("expiry fired after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := New()

	// Before start.
	c.Stop()
	c.Stop()

	c.Start(5)
	c.Stop()
	c.Stop()

	if c.Running() {
		t.Error("countdown running after Stop")
	}

	// After expiry.
	c.Start(1)
	c.Tick()
	c.Stop()
}

func TestRestartResetsRemaining(t *testing.T) {
	c := New()
	c.Start(10)
	c.Tick()
	c.Tick()

	c.Start(10)
	if c.Remaining() != 10 {
		t.Errorf("remaining after restart = %d, want 10", c.Remaining())
	}
	if !c.Running() {
		t.Error("countdown not running after restart")
	}
}

func TestStartZeroDoesNotRun(t *testing.T) {
	c := New()
	expired := false
	c.OnExpire(func() { expired = true })

	c.Start(0)
	if c.Running() {
		t.Error("zero-duration countdown running")
	}
	c.Tick()
	if expired {
		t.Error("zero-duration countdown fired expiry on tick")
	}

	c.Start(-3)
	if c.Running() {
		t.Error("negative-duration countdown running")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0 for negative duration", c.Remaining())
	}
}
