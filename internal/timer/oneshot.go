// Package timer provides a deferred callback that belongs to an owner and
// can be cancelled when the owner goes away.
package timer

import (
	"context"
	"sync"
	"time"
)

// OneShot runs a function once after a delay unless stopped first.
type OneShot struct {
	mu      sync.Mutex
	t       *time.Timer
	done    chan struct{}
	fired   bool
	stopped bool
}

// Start schedules fn to run after d. Cancelling ctx has the same effect as
// calling Stop. A nil fn is allowed; Done and Fired still work.
func Start(ctx context.Context, d time.Duration, fn func()) *OneShot {
	o := &OneShot{done: make(chan struct{})}
	o.t = time.AfterFunc(d, func() {
		o.mu.Lock()
		if o.stopped {
			o.mu.Unlock()
			return
		}
		o.fired = true
		close(o.done)
		o.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				o.Stop()
			case <-o.done:
			}
		}()
	}
	return o
}

// Stop cancels the timer. It reports true only if this call prevented fn
// from running; calling it again, or after firing, returns false.
func (o *OneShot) Stop() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fired || o.stopped {
		return false
	}
	o.stopped = true
	o.t.Stop()
	close(o.done)
	return true
}

// Done is closed once the timer has fired or been stopped.
func (o *OneShot) Done() <-chan struct{} { return o.done }

// Fired reports whether the callback was started.
func (o *OneShot) Fired() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fired
}

// Stopped reports whether the timer was cancelled before firing.
func (o *OneShot) Stopped() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stopped
}
