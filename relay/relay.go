// Package relay moves values from a handler-produced channel onto a gRPC
// server stream through a bounded buffer.
package relay

import "context"

// Buffer sizes for the outbound queue between a handler channel and a stream.
const (
	DefaultBuffer = 100
	GatewayBuffer = 32
)

// Sender is the sending half of a server stream.
type Sender[T any] interface {
	Send(*T) error
}

// Forward converts values read from src and queues them on the returned
// channel, which holds at most buffer items. The returned channel is closed
// when src closes or ctx ends. Order is preserved.
func Forward[In, Out any](ctx context.Context, src <-chan In, buffer int, convert func(In) *Out) <-chan *Out {
	if buffer < 0 {
		buffer = 0
	}
	out := make(chan *Out, buffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case value, ok := <-src:
				if !ok {
					return
				}
				select {
				case out <- convert(value):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Pipe forwards src onto dst until src closes, ctx ends, or a send fails.
// A failed send means the peer went away and is not reported; Pipe returns
// nil in every case so the stream ends with an OK status.
func Pipe[In, Out any](ctx context.Context, src <-chan In, dst Sender[Out], buffer int, convert func(In) *Out) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := Forward(ctx, src, buffer, convert)
	for msg := range queue {
		if err := dst.Send(msg); err != nil {
			return nil
		}
	}
	return nil
}
