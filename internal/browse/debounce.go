package browse

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer collapses bursts of triggers into a single callback invoked
// once a quiet period has elapsed since the last trigger. Only the most
// recent query is delivered.
type Debouncer struct {
	clock clockwork.Clock
	delay time.Duration
	fn    func(query string)

	mu     sync.Mutex
	timer  clockwork.Timer
	cancel chan struct{}
}

// NewDebouncer creates a debouncer that calls fn with the latest query
// after delay of quiet time.
func NewDebouncer(clock clockwork.Clock, delay time.Duration, fn func(query string)) *Debouncer {
	return &Debouncer{
		clock: clock,
		delay: delay,
		fn:    fn,
	}
}

// Trigger restarts the quiet-period timer with a new query. Any pending
// delivery is superseded.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPendingLocked()

	cancel := make(chan struct{})
	timer := d.clock.NewTimer(d.delay)
	d.cancel = cancel
	d.timer = timer

	go func() {
		select {
		case <-timer.Chan():
			d.mu.Lock()
			// A newer trigger may have slipped in between the timer
			// firing and this goroutine waking up.
			superseded := d.cancel != cancel
			if !superseded {
				d.cancel = nil
				d.timer = nil
			}
			d.mu.Unlock()

			if !superseded {
				d.fn(query)
			}
		case <-cancel:
		}
	}()
}

// Stop discards any pending delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPendingLocked()
}

func (d *Debouncer) cancelPendingLocked() {
	if d.cancel != nil {
		close(d.cancel)
		d.timer.Stop()
		d.cancel = nil
		d.timer = nil
	}
}
