// Package timer implements the whole-test countdown for the cognitive
// assessment. The countdown holds no goroutine or ticker of its own: the
// shell advances it by calling Tick once per elapsed second, so callbacks
// interleave with answer submissions on a single logical thread and stop
// flowing the moment the shell stops ticking.
package timer

// Countdown counts whole seconds down from a starting duration.
type Countdown struct {
	remaining int
	running   bool

	onTick   func(remaining int)
	onExpire func()
}

// New creates a stopped countdown.
func New() *Countdown {
	return &Countdown{}
}

// OnTick registers the callback fired once per elapsed second with the
// seconds remaining. Pass nil to clear.
func (c *Countdown) OnTick(fn func(remaining int)) {
	c.onTick = fn
}

// OnExpire registers the callback fired exactly once when the countdown
// reaches zero. Pass nil to clear.
func (c *Countdown) OnExpire(fn func()) {
	c.onExpire = fn
}

// Start begins (or restarts) the countdown from the given duration.
// Non-positive durations leave it stopped at zero.
func (c *Countdown) Start(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.remaining = seconds
	c.running = seconds > 0
}

// Tick advances the countdown by one second. It is a no-op unless the
// countdown is running. When the countdown reaches zero it stops itself
// and fires the expiry callback; a Stop that happened first suppresses it.
func (c *Countdown) Tick() {
	if !c.running {
		return
	}

	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		if c.onExpire != nil {
			c.onExpire()
		}
		return
	}

	if c.onTick != nil {
		c.onTick(c.remaining)
	}
}

// Stop halts the countdown without firing expiry. Safe to call at any
// time, including before Start and after expiry.
func (c *Countdown) Stop() {
	c.running = false
}

// Running reports whether the countdown is active.
func (c *Countdown) Running() bool {
	return c.running
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}
