package channel

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/internal/testkit"
)

type fakeChannel struct {
	mu         sync.Mutex
	config     map[string]string
	sent       []Envelope
	inbound    []Envelope
	connectErr error
	sendErr    error
	receiveErr error
}

func (f *fakeChannel) ID() string { return "fake" }

func (f *fakeChannel) Connect(_ context.Context, config map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config = config
	return f.connectErr
}

func (f *fakeChannel) Disconnect(context.Context) error { return nil }

func (f *fakeChannel) Send(_ context.Context, env Envelope) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, env)
	return "msg-1", nil
}

func (f *fakeChannel) Receive(context.Context) (<-chan Envelope, error) {
	if f.receiveErr != nil {
		return nil, f.receiveErr
	}
	ch := make(chan Envelope, len(f.inbound))
	for _, env := range f.inbound {
		ch <- env
	}
	close(ch)
	return ch, nil
}

func newClient(t *testing.T, h Handler) appsv0.ChannelServiceClient {
	t.Helper()
	conn := testkit.Serve(t, func(s *grpc.Server) {
		appsv0.RegisterChannelServiceServer(s, NewBridge(h, bridge.Base{Env: appenv.Env{Name: "chat", Version: "1.0.0"}}))
	})
	return appsv0.NewChannelServiceClient(conn)
}

func TestBridgeReceiveForwardsInOrderThenCompletes(t *testing.T) {
	handler := &fakeChannel{inbound: []Envelope{
		{MessageID: "1", ChannelID: "room", Text: "first"},
		{MessageID: "2", ChannelID: "room", Text: "second"},
	}}
	client := newClient(t, handler)

	stream, err := client.Receive(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}

	var texts []string
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		texts = append(texts, msg.GetText())
	}
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Fatalf("received %v, want [first second]", texts)
	}
}

func TestBridgeReceiveOpenFailureIsTransportFault(t *testing.T) {
	client := newClient(t, &fakeChannel{receiveErr: apperr.New(apperr.CodeUnavailable, "not connected")})

	stream, err := client.Receive(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	_, err = stream.Recv()
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("recv error = %v, want Unavailable", err)
	}
}

func TestBridgeSendConvertsEnvelope(t *testing.T) {
	handler := &fakeChannel{}
	client := newClient(t, handler)
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	resp, err := client.Send(testkit.Context(t, 5*time.Second), &appsv0.ChannelSendRequest{
		Envelope: &appsv0.ChannelEnvelope{
			ChannelId:   "room",
			Text:        "hello",
			Sender:      &appsv0.MessageSender{Id: "u1", Name: "Ana", Bot: true},
			Attachments: []*appsv0.Attachment{{Type: "image", Url: "https://example.test/a.png", Size: 42}},
			Timestamp:   at.UnixMilli(),
		},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.GetMessageId() != "msg-1" || resp.GetError() != "" {
		t.Fatalf("response = %+v", resp)
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	got := handler.sent[0]
	if got.ChannelID != "room" || got.Text != "hello" || got.Sender.Name != "Ana" || !got.Sender.Bot {
		t.Fatalf("envelope = %+v", got)
	}
	if len(got.Attachments) != 1 || got.Attachments[0].URL != "https://example.test/a.png" || got.Attachments[0].Size != 42 {
		t.Fatalf("attachments = %+v", got.Attachments)
	}
	if !got.Timestamp.Equal(at) {
		t.Fatalf("timestamp = %v, want %v", got.Timestamp, at)
	}
}

func TestBridgeSendWithoutEnvelopeUsesDefaults(t *testing.T) {
	handler := &fakeChannel{}
	client := newClient(t, handler)

	if _, err := client.Send(testkit.Context(t, 5*time.Second), &appsv0.ChannelSendRequest{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	handler.mu.Lock()
	defer handler.mu.Unlock()
	if got := handler.sent[0]; got.Text != "" || got.Sender.ID != "" || !got.Timestamp.IsZero() {
		t.Fatalf("envelope = %+v, want zero value", got)
	}
}

func TestBridgeHandlerErrorsAreInBand(t *testing.T) {
	handler := &fakeChannel{connectErr: errors.New("bad token"), sendErr: errors.New("rate limited")}
	client := newClient(t, handler)
	ctx := testkit.Context(t, 5*time.Second)

	connect, err := client.Connect(ctx, &appsv0.ChannelConnectRequest{Config: map[string]string{"token": "x"}})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if connect.GetError() != "bad token" {
		t.Fatalf("connect error = %q", connect.GetError())
	}

	send, err := client.Send(ctx, &appsv0.ChannelSendRequest{Envelope: &appsv0.ChannelEnvelope{Text: "hi"}})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if send.GetError() != "rate limited" || send.GetMessageId() != "" {
		t.Fatalf("send response = %+v", send)
	}
}

func TestBridgeIdAndHealth(t *testing.T) {
	client := newClient(t, &fakeChannel{})
	ctx := testkit.Context(t, 5*time.Second)

	id, err := client.Id(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("id: %v", err)
	}
	if id.GetId() != "fake" {
		t.Fatalf("id = %q", id.GetId())
	}
	health, err := client.HealthCheck(ctx, &appsv0.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if health.GetName() != "chat" || !health.GetHealthy() {
		t.Fatalf("health = %+v", health)
	}
}
