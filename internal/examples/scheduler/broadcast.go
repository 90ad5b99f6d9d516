package scheduler

import (
	"context"
	"sync"

	"github.com/louisbranch/capbridge/schedule"
)

const triggerBuffer = 16

// broadcaster fans triggers out to every open Triggers stream. A subscriber
// whose buffer is full misses the trigger.
type broadcaster struct {
	mu   sync.Mutex
	subs map[chan schedule.Trigger]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan schedule.Trigger]struct{})}
}

func (b *broadcaster) subscribe(ctx context.Context) <-chan schedule.Trigger {
	ch := make(chan schedule.Trigger, triggerBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	context.AfterFunc(ctx, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, ch)
		close(ch)
	})
	return ch
}

// publish returns how many subscribers received t and how many missed it.
func (b *broadcaster) publish(t schedule.Trigger) (delivered, dropped int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- t:
			delivered++
		default:
			dropped++
		}
	}
	return delivered, dropped
}
