package scheduler

import (
	"context"
	"testing"

	"github.com/louisbranch/capbridge/schedule"
)

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := newBroadcaster()
	slow := b.subscribe(ctx)

	for i := 0; i < triggerBuffer; i++ {
		if delivered, dropped := b.publish(schedule.Trigger{Name: "job"}); delivered != 1 || dropped != 0 {
			t.Fatalf("publish %d = %d delivered %d dropped", i, delivered, dropped)
		}
	}
	if delivered, dropped := b.publish(schedule.Trigger{Name: "overflow"}); delivered != 0 || dropped != 1 {
		t.Fatalf("publish on full buffer = %d delivered %d dropped", delivered, dropped)
	}

	fast := b.subscribe(ctx)
	if delivered, dropped := b.publish(schedule.Trigger{Name: "next"}); delivered != 1 || dropped != 1 {
		t.Fatalf("publish with one full subscriber = %d delivered %d dropped", delivered, dropped)
	}
	if got := <-fast; got.Name != "next" {
		t.Fatalf("fast subscriber got %q", got.Name)
	}
	if len(slow) != triggerBuffer {
		t.Fatalf("slow buffer = %d, want %d", len(slow), triggerBuffer)
	}
}
