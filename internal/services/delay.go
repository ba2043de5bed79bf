package services

import (
	"context"
	"sync"
	"time"
)

// delayedTasks runs functions after a delay and cancels the pending ones when
// the owning panel is closed.
type delayedTasks struct {
	mu     sync.Mutex // guards closed and wg.Add against close
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newDelayedTasks() *delayedTasks {
	ctx, cancel := context.WithCancel(context.Background())
	return &delayedTasks{ctx: ctx, cancel: cancel}
}

// after schedules fn; every call gets its own independent timer
func (d *delayedTasks) after(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-d.ctx.Done():
		case <-timer.C:
			if d.ctx.Err() == nil {
				fn()
			}
		}
	}()
}

// wait blocks until every scheduled task fired or was cancelled
func (d *delayedTasks) wait() {
	d.wg.Wait()
}

// close cancels pending tasks and waits for them to exit
func (d *delayedTasks) close() {
	d.mu.Lock()
	d.closed = true
	d.cancel()
	d.mu.Unlock()

	d.wg.Wait()
}
