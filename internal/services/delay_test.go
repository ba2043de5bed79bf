package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDelayedTasksAfterCloseIsNoOp(t *testing.T) {
	tasks := newDelayedTasks()
	tasks.close()

	var ran atomic.Bool
	tasks.after(0, func() { ran.Store(true) })
	tasks.wait()

	if ran.Load() {
		t.Fatal("expected task scheduled after close to be skipped")
	}
}

func TestDelayedTasksCloseRacesAfter(t *testing.T) {
	for i := 0; i < 50; i++ {
		tasks := newDelayedTasks()

		var wg sync.WaitGroup
		for j := 0; j < 4; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for k := 0; k < 10; k++ {
					tasks.after(time.Hour, func() {})
				}
			}()
		}
		tasks.close()
		wg.Wait()

		// Every task either was never scheduled or was cancelled by close.
		done := make(chan struct{})
		go func() {
			tasks.close()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("expected pending tasks to exit after close")
		}
	}
}
