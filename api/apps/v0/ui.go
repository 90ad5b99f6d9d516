package appsv0

// ViewContext describes which view the host wants rendered.
type ViewContext struct {
	ViewId   string            `cbor:"view_id,omitempty"`
	Path     string            `cbor:"path,omitempty"`
	Locale   string            `cbor:"locale,omitempty"`
	Settings map[string]string `cbor:"settings,omitempty"`
}

func (x *ViewContext) GetViewId() string {
	if x != nil {
		return x.ViewId
	}
	return ""
}

func (x *ViewContext) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ViewContext) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

func (x *ViewContext) GetSettings() map[string]string {
	if x != nil {
		return x.Settings
	}
	return nil
}

type SelectOption struct {
	Label string `cbor:"label,omitempty"`
	Value string `cbor:"value,omitempty"`
}

func (x *SelectOption) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *SelectOption) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

// UiBlock is one typed element of a view.
type UiBlock struct {
	BlockId     string          `cbor:"block_id,omitempty"`
	Type        string          `cbor:"type,omitempty"`
	Text        string          `cbor:"text,omitempty"`
	Value       string          `cbor:"value,omitempty"`
	Placeholder string          `cbor:"placeholder,omitempty"`
	Hint        string          `cbor:"hint,omitempty"`
	Variant     string          `cbor:"variant,omitempty"`
	Src         string          `cbor:"src,omitempty"`
	Alt         string          `cbor:"alt,omitempty"`
	Disabled    bool            `cbor:"disabled,omitempty"`
	Options     []*SelectOption `cbor:"options,omitempty"`
	Style       string          `cbor:"style,omitempty"`
}

func (x *UiBlock) GetBlockId() string {
	if x != nil {
		return x.BlockId
	}
	return ""
}

func (x *UiBlock) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *UiBlock) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *UiBlock) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *UiBlock) GetPlaceholder() string {
	if x != nil {
		return x.Placeholder
	}
	return ""
}

func (x *UiBlock) GetHint() string {
	if x != nil {
		return x.Hint
	}
	return ""
}

func (x *UiBlock) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *UiBlock) GetSrc() string {
	if x != nil {
		return x.Src
	}
	return ""
}

func (x *UiBlock) GetAlt() string {
	if x != nil {
		return x.Alt
	}
	return ""
}

func (x *UiBlock) GetDisabled() bool {
	if x != nil {
		return x.Disabled
	}
	return false
}

func (x *UiBlock) GetOptions() []*SelectOption {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *UiBlock) GetStyle() string {
	if x != nil {
		return x.Style
	}
	return ""
}

// UiView is an ordered sequence of blocks.
type UiView struct {
	ViewId string     `cbor:"view_id,omitempty"`
	Title  string     `cbor:"title,omitempty"`
	Blocks []*UiBlock `cbor:"blocks,omitempty"`
}

func (x *UiView) GetViewId() string {
	if x != nil {
		return x.ViewId
	}
	return ""
}

func (x *UiView) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UiView) GetBlocks() []*UiBlock {
	if x != nil {
		return x.Blocks
	}
	return nil
}

type GetViewResponse struct {
	View  *UiView `cbor:"view,omitempty"`
	Error string  `cbor:"error,omitempty"`
}

func (x *GetViewResponse) GetView() *UiView {
	if x != nil {
		return x.View
	}
	return nil
}

func (x *GetViewResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

// UiEvent is a user interaction with a block.
type UiEvent struct {
	ViewId  string `cbor:"view_id,omitempty"`
	BlockId string `cbor:"block_id,omitempty"`
	Action  string `cbor:"action,omitempty"`
	Value   string `cbor:"value,omitempty"`
}

func (x *UiEvent) GetViewId() string {
	if x != nil {
		return x.ViewId
	}
	return ""
}

func (x *UiEvent) GetBlockId() string {
	if x != nil {
		return x.BlockId
	}
	return ""
}

func (x *UiEvent) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *UiEvent) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type UiEventResponse struct {
	View  *UiView `cbor:"view,omitempty"`
	Error string  `cbor:"error,omitempty"`
	Toast string  `cbor:"toast,omitempty"`
}

func (x *UiEventResponse) GetView() *UiView {
	if x != nil {
		return x.View
	}
	return nil
}

func (x *UiEventResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *UiEventResponse) GetToast() string {
	if x != nil {
		return x.Toast
	}
	return ""
}

// HttpRequest is a browser request the host proxies to the app.
type HttpRequest struct {
	Method  string            `cbor:"method,omitempty"`
	Path    string            `cbor:"path,omitempty"`
	Query   string            `cbor:"query,omitempty"`
	Headers map[string]string `cbor:"headers,omitempty"`
	Body    []byte            `cbor:"body,omitempty"`
}

func (x *HttpRequest) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *HttpRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *HttpRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *HttpRequest) GetHeaders() map[string]string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *HttpRequest) GetBody() []byte {
	if x != nil {
		return x.Body
	}
	return nil
}

type HttpResponse struct {
	StatusCode int32             `cbor:"status_code,omitempty"`
	Headers    map[string]string `cbor:"headers,omitempty"`
	Body       []byte            `cbor:"body,omitempty"`
}

func (x *HttpResponse) GetStatusCode() int32 {
	if x != nil {
		return x.StatusCode
	}
	return 0
}

func (x *HttpResponse) GetHeaders() map[string]string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *HttpResponse) GetBody() []byte {
	if x != nil {
		return x.Body
	}
	return nil
}
