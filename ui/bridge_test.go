package ui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/internal/testkit"
)

type counterUI struct {
	count   int
	viewErr error
}

func (c *counterUI) view() View {
	return View{
		ID:    "counter",
		Title: "Counter",
		Blocks: []Block{
			{ID: "value", Type: BlockHeading, Text: "0"},
			{ID: "step", Type: BlockSelect, Options: []Option{{Label: "One", Value: "1"}, {Label: "Ten", Value: "10"}}},
			{ID: "inc", Type: BlockButton, Text: "Increment", Variant: "primary"},
		},
	}
}

func (c *counterUI) GetView(_ context.Context, vc ViewContext) (View, error) {
	if c.viewErr != nil {
		return View{}, c.viewErr
	}
	v := c.view()
	if vc.Locale == "pt" {
		v.Title = "Contador"
	}
	return v, nil
}

func (c *counterUI) OnEvent(_ context.Context, ev Event) (EventResult, error) {
	switch ev.BlockID {
	case "inc":
		c.count++
		v := c.view()
		return EventResult{View: &v, Toast: "incremented"}, nil
	case "noop":
		return EventResult{}, nil
	case "invalid":
		return EventResult{Error: "value out of range"}, nil
	default:
		return EventResult{}, errors.New("unknown block")
	}
}

type streamingUI struct {
	counterUI
	updates []View
}

func (s *streamingUI) StreamUpdates(context.Context) (<-chan View, error) {
	ch := make(chan View, len(s.updates))
	for _, v := range s.updates {
		ch <- v
	}
	close(ch)
	return ch, nil
}

type staticUI struct {
	counterUI
	got HTTPRequest
}

func (s *staticUI) HandleRequest(_ context.Context, req HTTPRequest) (HTTPResponse, error) {
	s.got = req
	switch req.Path {
	case "/missing":
		return HTTPResponse{}, apperr.NotFound("asset not found: " + req.Path)
	case "/broken":
		return HTTPResponse{}, errors.New("disk read failed")
	}
	return HTTPResponse{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       append([]byte("echo:"), req.Body...),
	}, nil
}

func newClient(t *testing.T, h Handler) appsv0.UiServiceClient {
	t.Helper()
	conn := testkit.Serve(t, func(s *grpc.Server) {
		appsv0.RegisterUiServiceServer(s, NewBridge(h, bridge.Base{Env: appenv.Env{Name: "ui-app"}}))
	})
	return appsv0.NewUiServiceClient(conn)
}

func TestBridgeGetView(t *testing.T) {
	client := newClient(t, &counterUI{})

	resp, err := client.GetView(testkit.Context(t, 5*time.Second), &appsv0.ViewContext{ViewId: "counter", Locale: "pt"})
	if err != nil {
		t.Fatalf("get view: %v", err)
	}
	view := resp.GetView()
	if view.GetTitle() != "Contador" || len(view.GetBlocks()) != 3 {
		t.Fatalf("view = %+v", view)
	}
	sel := view.GetBlocks()[1]
	if sel.GetType() != BlockSelect || len(sel.GetOptions()) != 2 || sel.GetOptions()[1].GetValue() != "10" {
		t.Fatalf("select block = %+v", sel)
	}
}

func TestBridgeGetViewErrorIsInBand(t *testing.T) {
	client := newClient(t, &counterUI{viewErr: errors.New("not authorized")})

	resp, err := client.GetView(testkit.Context(t, 5*time.Second), &appsv0.ViewContext{})
	if err != nil {
		t.Fatalf("get view returned transport error: %v", err)
	}
	if resp.GetError() != "not authorized" || resp.GetView() != nil {
		t.Fatalf("response = %+v", resp)
	}
}

func TestBridgeOnEvent(t *testing.T) {
	client := newClient(t, &counterUI{})
	ctx := testkit.Context(t, 5*time.Second)

	updated, err := client.OnEvent(ctx, &appsv0.UiEvent{ViewId: "counter", BlockId: "inc", Action: "click"})
	if err != nil {
		t.Fatalf("on event: %v", err)
	}
	if updated.GetToast() != "incremented" || updated.GetView().GetViewId() != "counter" {
		t.Fatalf("response = %+v", updated)
	}

	unchanged, err := client.OnEvent(ctx, &appsv0.UiEvent{BlockId: "noop"})
	if err != nil {
		t.Fatalf("on event: %v", err)
	}
	if unchanged.GetView() != nil {
		t.Fatalf("expected no view, got %+v", unchanged.GetView())
	}

	reported, err := client.OnEvent(ctx, &appsv0.UiEvent{BlockId: "invalid"})
	if err != nil {
		t.Fatalf("on event: %v", err)
	}
	if reported.GetError() != "value out of range" {
		t.Fatalf("error = %q", reported.GetError())
	}

	failed, err := client.OnEvent(ctx, &appsv0.UiEvent{BlockId: "missing"})
	if err != nil {
		t.Fatalf("on event returned transport error: %v", err)
	}
	if failed.GetError() != "unknown block" || failed.GetToast() != "" {
		t.Fatalf("response = %+v", failed)
	}
}

func TestBridgeStreamUpdatesUnimplementedWithoutStreamer(t *testing.T) {
	client := newClient(t, &counterUI{})

	stream, err := client.StreamUpdates(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	if _, err := stream.Recv(); status.Code(err) != codes.Unimplemented {
		t.Fatalf("recv error = %v, want Unimplemented", err)
	}
}

func TestBridgeStreamUpdatesForwardsViews(t *testing.T) {
	client := newClient(t, &streamingUI{updates: []View{{ID: "a"}, {ID: "b"}}})

	stream, err := client.StreamUpdates(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	var ids []string
	for {
		v, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		ids = append(ids, v.GetViewId())
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("views = %v", ids)
	}
}

func TestViewConversionPreservesBlocks(t *testing.T) {
	v := (&counterUI{}).view()
	back := ViewFromProto(ViewToProto(v))
	if back.ID != v.ID || len(back.Blocks) != len(v.Blocks) {
		t.Fatalf("round trip = %+v", back)
	}
	if back.Blocks[2].Variant != "primary" || back.Blocks[1].Options[0].Label != "One" {
		t.Fatalf("blocks = %+v", back.Blocks)
	}
}

func TestBridgeHandleRequestUnimplementedWithoutHTTPHandler(t *testing.T) {
	client := newClient(t, &counterUI{})

	_, err := client.HandleRequest(testkit.Context(t, 5*time.Second), &appsv0.HttpRequest{Method: "GET", Path: "/"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("error = %v, want Unimplemented", err)
	}
}

func TestBridgeHandleRequestProxiesRequest(t *testing.T) {
	h := &staticUI{}
	client := newClient(t, h)

	resp, err := client.HandleRequest(testkit.Context(t, 5*time.Second), &appsv0.HttpRequest{
		Method:  "POST",
		Path:    "/api/notes",
		Query:   "draft=1",
		Headers: map[string]string{"X-Trace": "abc"},
		Body:    []byte("hello"),
	})
	if err != nil {
		t.Fatalf("handle request: %v", err)
	}
	if h.got.Method != "POST" || h.got.Path != "/api/notes" || h.got.Query != "draft=1" || h.got.Headers["X-Trace"] != "abc" || string(h.got.Body) != "hello" {
		t.Fatalf("handler saw %+v", h.got)
	}
	if resp.GetStatusCode() != 201 || resp.GetHeaders()["Content-Type"] != "text/plain" || string(resp.GetBody()) != "echo:hello" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestBridgeHandleRequestErrorFailsCall(t *testing.T) {
	client := newClient(t, &staticUI{})
	ctx := testkit.Context(t, 5*time.Second)

	tests := []struct {
		path string
		want codes.Code
	}{
		{path: "/missing", want: codes.NotFound},
		{path: "/broken", want: codes.Internal},
	}
	for _, tc := range tests {
		resp, err := client.HandleRequest(ctx, &appsv0.HttpRequest{Method: "GET", Path: tc.path})
		if status.Code(err) != tc.want {
			t.Fatalf("%s: error = %v, want %v", tc.path, err, tc.want)
		}
		if resp != nil {
			t.Fatalf("%s: response = %+v, want nil", tc.path, resp)
		}
	}
}
