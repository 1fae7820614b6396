package ecs

import "time"

// Timer counts down in frame time and calls OnTimeout when it expires.
// A periodic timer restarts itself after each expiry, a one-shot timer stops.
// Timers only advance while they are registered with a TimerSystem.
type Timer struct {
	Name      string
	WaitTime  time.Duration
	OneShot   bool
	OnTimeout func()

	remaining float64
	running   bool
	fired     int64

	// due marks a timer that was running when the current frame began
	due bool
}

// NewTimer creates a stopped timer.
func NewTimer(name string, wait time.Duration, oneShot bool, onTimeout func()) *Timer {
	return &Timer{
		Name:      name,
		WaitTime:  wait,
		OneShot:   oneShot,
		OnTimeout: onTimeout,
	}
}

// Start (re)starts the countdown from the full wait time.
// A timer started from inside a frame starts counting on the next frame.
func (t *Timer) Start() {
	t.remaining = t.WaitTime.Seconds()
	t.running = true
	t.due = false
}

// Stop halts the countdown. A stopped timer never fires.
func (t *Timer) Stop() {
	t.running = false
	t.remaining = 0
}

func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left before the next expiry.
func (t *Timer) Remaining() time.Duration {
	if !t.running {
		return 0
	}
	return time.Duration(t.remaining * float64(time.Second))
}

// Fired returns how many times the timer has expired since creation.
func (t *Timer) Fired() int64 {
	return t.fired
}

// Advance moves the timer forward by dt seconds, firing once per elapsed interval.
func (t *Timer) Advance(dt float64) {
	if !t.running || dt <= 0 {
		return
	}

	t.remaining -= dt
	for t.running && t.remaining <= 0 {
		t.fired++
		if t.OneShot {
			t.running = false
			t.remaining = 0
		} else {
			wait := t.WaitTime.Seconds()
			if wait <= 0 {
				// a zero interval fires once per frame
				t.remaining = 0
				t.fire()
				return
			}
			t.remaining += wait
		}
		t.fire()
	}
}

func (t *Timer) fire() {
	if t.OnTimeout != nil {
		t.OnTimeout()
	}
}

// TimerSystem advances its timers by the frame delta, in registration order.
// Only timers already running when the frame begins are advanced.
type TimerSystem struct {
	timers []*Timer
}

func NewTimerSystem(timers ...*Timer) *TimerSystem {
	return &TimerSystem{timers: timers}
}

// Add registers more timers.
func (s *TimerSystem) Add(timers ...*Timer) {
	s.timers = append(s.timers, timers...)
}

// Timers returns the registered timers.
func (s *TimerSystem) Timers() []*Timer {
	return s.timers
}

func (s *TimerSystem) Execute(frame *UpdateFrame) {
	for _, timer := range s.timers {
		timer.due = timer.running
	}
	for _, timer := range s.timers {
		if timer.due {
			timer.due = false
			timer.Advance(frame.DeltaTime)
		}
	}
}
