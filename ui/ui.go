// Package ui defines the Ui capability: server-driven views made of typed
// blocks that the host renders and reports events back from.
package ui

import "context"

// Block types understood by the host renderer.
const (
	BlockText    = "text"
	BlockHeading = "heading"
	BlockInput   = "input"
	BlockButton  = "button"
	BlockSelect  = "select"
	BlockToggle  = "toggle"
	BlockDivider = "divider"
	BlockImage   = "image"
)

// Handler renders views and reacts to user events.
type Handler interface {
	GetView(ctx context.Context, vc ViewContext) (View, error)
	OnEvent(ctx context.Context, ev Event) (EventResult, error)
}

// UpdateStreamer is implemented by handlers that push view updates without a
// user event.
type UpdateStreamer interface {
	StreamUpdates(ctx context.Context) (<-chan View, error)
}

// HTTPHandler is implemented by handlers that serve raw HTTP requests the
// host proxies from the browser.
type HTTPHandler interface {
	HandleRequest(ctx context.Context, req HTTPRequest) (HTTPResponse, error)
}

// HTTPRequest is a proxied browser request. Query is the raw query string
// without the leading '?'.
type HTTPRequest struct {
	Method  string
	Path    string
	Query   string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse is sent back to the browser as is.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// ViewContext describes where a view is requested.
type ViewContext struct {
	ViewID   string
	Path     string
	Locale   string
	Settings map[string]string
}

// Option is one entry of a select block.
type Option struct {
	Label string
	Value string
}

// Block is one element of a view. Fields not meaningful for a block's Type
// are left empty.
type Block struct {
	ID          string
	Type        string
	Text        string
	Value       string
	Placeholder string
	Hint        string
	Variant     string
	Src         string
	Alt         string
	Disabled    bool
	Options     []Option
	Style       string
}

// View is an ordered sequence of blocks.
type View struct {
	ID     string
	Title  string
	Blocks []Block
}

// Event is a user interaction with a block.
type Event struct {
	ViewID  string
	BlockID string
	Action  string
	Value   string
}

// EventResult is the handler's answer to an event. A nil View keeps the
// current view on screen.
type EventResult struct {
	View  *View
	Error string
	Toast string
}
