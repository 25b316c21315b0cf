package motion

// Timer is a one-shot countdown advanced explicitly once per tick. It is
// either idle or counting down; expiry is just Remaining() reaching zero,
// with no callback registration.
type Timer struct {
	remaining float64
	active    bool
}

// Start resets the timer to d seconds and marks it active.
func (t *Timer) Start(d float64) {
	t.remaining = d
	t.active = d > 0
}

// Stop forces the timer inactive.
func (t *Timer) Stop() {
	t.remaining = 0
	t.active = false
}

// Tick decrements the remaining time, deactivating once it reaches zero.
func (t *Timer) Tick(dt float64) {
	if !t.active {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.active = false
	}
}

func (t *Timer) Active() bool {
	return t.active
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}

// TimerSet holds the three independent jump-forgiveness timers. Starting or
// stopping one never affects another; all three are ticked once per
// simulation tick.
type TimerSet struct {
	Buffer Timer
	Coyote Timer
	Grace  Timer
}

// Tick advances all three timers.
func (s *TimerSet) Tick(dt float64) {
	s.Buffer.Tick(dt)
	s.Coyote.Tick(dt)
	s.Grace.Tick(dt)
}
