package ui

// Base carries the size and focus state shared by widgets.
//
//	type Model struct {
//	    ui.Base
//	    controls []*toolbutton.Model
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the widget has keyboard focus.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the widget has keyboard focus.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the outer dimensions, clamping negatives to zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}

// InnerWidth is the width left inside a bordered panel.
func (b Base) InnerWidth() int {
	return max(b.width-BorderSize, 0)
}

// InnerHeight is the height left inside a bordered panel.
func (b Base) InnerHeight() int {
	return max(b.height-BorderSize, 0)
}
