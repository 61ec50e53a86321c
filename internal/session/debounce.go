package session

import (
	"sync"
	"time"
)

// Debouncer runs a function once input activity pauses for a fixed
// delay. Every Trigger cancels the pending run and schedules a new one,
// so only the last text of a burst is processed and runs never overlap a
// newer trigger.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(text string)
}

// NewDebouncer creates a debouncer that calls fn with the most recent
// text after delay of quiet. A zero or negative delay fires on the next
// timer tick.
func NewDebouncer(delay time.Duration, fn func(text string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn for text, replacing any pending schedule.
func (d *Debouncer) Trigger(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(text)
	})
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
