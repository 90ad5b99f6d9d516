// Package llmgateway is a reference Gateway handler. It streams completions
// from one configured provider (OpenAI, Ollama or Gemini), keeps a registry
// of in-flight requests for cancellation, and buffers events for polling
// hosts.
package llmgateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/gateway"
)

// Provider streams one completion. It calls emit for every text, thinking
// or tool_call event and returns when the completion ends. The gateway adds
// the final error and done events.
type Provider interface {
	Name() string
	Stream(ctx context.Context, req gateway.Request, emit func(gateway.Event) error) error
}

// ToolCall is the provider-neutral form of a model's tool invocation. It is
// the content of tool_call events and the element type of
// gateway.Message.ToolCalls.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// EncodeToolCall renders tc as tool_call event content.
func EncodeToolCall(tc ToolCall) string {
	if tc.Arguments == "" {
		tc.Arguments = "{}"
	}
	data, _ := json.Marshal(tc)
	return string(data)
}

// DecodeToolCalls parses gateway.Message.ToolCalls. Empty or malformed input
// yields no calls.
func DecodeToolCalls(raw string) []ToolCall {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var calls []ToolCall
	if err := json.Unmarshal([]byte(raw), &calls); err != nil {
		return nil
	}
	return calls
}

const (
	eventBuffer = 32
	// pollRetention bounds how long a finished request's events wait for a
	// poller.
	pollRetention = 5 * time.Minute
)

// Option customizes a Gateway.
type Option func(*Gateway)

// WithDefaultModel sets the model used when a request names none.
func WithDefaultModel(model string) Option {
	return func(g *Gateway) { g.defaultModel = strings.TrimSpace(model) }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

type pending struct {
	cancel   context.CancelFunc
	events   []gateway.Event
	complete bool
	finished time.Time
}

// Gateway implements gateway.Handler and gateway.Poller.
type Gateway struct {
	provider     Provider
	defaultModel string
	logger       *slog.Logger
	now          func() time.Time

	mu       sync.Mutex
	requests map[string]*pending
}

// New returns a Gateway that streams from provider.
func New(provider Provider, opts ...Option) *Gateway {
	g := &Gateway{
		provider: provider,
		logger:   slog.Default(),
		now:      time.Now,
		requests: make(map[string]*pending),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Stream starts a completion. A request without an id gets one; every event
// carries it. The channel always ends with a done event, preceded by an
// error event when the provider fails.
func (g *Gateway) Stream(ctx context.Context, req gateway.Request) (<-chan gateway.Event, error) {
	if len(req.Messages) == 0 {
		return nil, apperr.InvalidInput("at least one message is required")
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Model == "" {
		req.Model = g.defaultModel
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	if err := g.register(req.RequestID, cancel); err != nil {
		cancel()
		return nil, err
	}

	out := make(chan gateway.Event, eventBuffer)
	go func() {
		defer close(out)
		defer cancel()

		send := func(ev gateway.Event) error {
			ev.RequestID = req.RequestID
			if ev.Model == "" {
				ev.Model = req.Model
			}
			g.record(req.RequestID, ev)
			select {
			case out <- ev:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := g.provider.Stream(ctx, req, send)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled) || ctx.Err() != nil:
			g.logger.Info("completion cancelled", "request_id", req.RequestID)
		default:
			g.logger.Warn("completion failed", "request_id", req.RequestID, "provider", g.provider.Name(), "error", err)
			_ = send(gateway.Event{Type: gateway.EventError, Content: err.Error()})
		}
		done := gateway.Event{Type: gateway.EventDone, RequestID: req.RequestID, Model: req.Model}
		g.finish(req.RequestID, done)
		// A cancelled request still ends with done while the caller listens.
		select {
		case out <- done:
		case <-parent.Done():
		}
	}()
	return out, nil
}

// Cancel stops an in-flight request. Unknown or finished ids are NOT_FOUND.
func (g *Gateway) Cancel(_ context.Context, requestID string) error {
	g.mu.Lock()
	p, ok := g.requests[requestID]
	g.mu.Unlock()
	if !ok || p.complete {
		return apperr.Errorf(apperr.CodeNotFound, "request %q not found", requestID)
	}
	p.cancel()
	return nil
}

// Poll drains the events buffered for requestID since the last poll.
// complete reports that the request has finished and nothing remains.
func (g *Gateway) Poll(_ context.Context, requestID string) ([]gateway.Event, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.requests[requestID]
	if !ok {
		return nil, false, apperr.Errorf(apperr.CodeNotFound, "request %q not found", requestID)
	}
	events := p.events
	p.events = nil
	if p.complete {
		delete(g.requests, requestID)
	}
	return events, p.complete, nil
}

func (g *Gateway) register(id string, cancel context.CancelFunc) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.evictLocked()
	if _, ok := g.requests[id]; ok {
		return apperr.Errorf(apperr.CodeAlreadyExists, "request %q already exists", id)
	}
	g.requests[id] = &pending{cancel: cancel}
	return nil
}

func (g *Gateway) record(id string, ev gateway.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.requests[id]; ok {
		p.events = append(p.events, ev)
	}
}

func (g *Gateway) finish(id string, done gateway.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.requests[id]; ok {
		p.events = append(p.events, done)
		p.complete = true
		p.finished = g.now()
	}
}

func (g *Gateway) evictLocked() {
	cutoff := g.now().Add(-pollRetention)
	for id, p := range g.requests {
		if p.complete && p.finished.Before(cutoff) {
			delete(g.requests, id)
		}
	}
}

var (
	_ gateway.Handler = (*Gateway)(nil)
	_ gateway.Poller  = (*Gateway)(nil)
)
