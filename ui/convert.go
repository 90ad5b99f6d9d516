package ui

import appsv0 "github.com/louisbranch/capbridge/api/apps/v0"

// ViewToProto converts a view to its wire form.
func ViewToProto(v View) *appsv0.UiView {
	out := &appsv0.UiView{ViewId: v.ID, Title: v.Title}
	for _, b := range v.Blocks {
		block := &appsv0.UiBlock{
			BlockId:     b.ID,
			Type:        b.Type,
			Text:        b.Text,
			Value:       b.Value,
			Placeholder: b.Placeholder,
			Hint:        b.Hint,
			Variant:     b.Variant,
			Src:         b.Src,
			Alt:         b.Alt,
			Disabled:    b.Disabled,
			Style:       b.Style,
		}
		for _, o := range b.Options {
			block.Options = append(block.Options, &appsv0.SelectOption{Label: o.Label, Value: o.Value})
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out
}

// ViewFromProto converts a wire view. Absent fields become zero values.
func ViewFromProto(in *appsv0.UiView) View {
	v := View{ID: in.GetViewId(), Title: in.GetTitle()}
	for _, b := range in.GetBlocks() {
		block := Block{
			ID:          b.GetBlockId(),
			Type:        b.GetType(),
			Text:        b.GetText(),
			Value:       b.GetValue(),
			Placeholder: b.GetPlaceholder(),
			Hint:        b.GetHint(),
			Variant:     b.GetVariant(),
			Src:         b.GetSrc(),
			Alt:         b.GetAlt(),
			Disabled:    b.GetDisabled(),
			Style:       b.GetStyle(),
		}
		for _, o := range b.GetOptions() {
			block.Options = append(block.Options, Option{Label: o.GetLabel(), Value: o.GetValue()})
		}
		v.Blocks = append(v.Blocks, block)
	}
	return v
}
