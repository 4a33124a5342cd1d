package toolbutton

// Kind is the interaction shape of a control.
type Kind int

const (
	// Button is a momentary push button.
	Button Kind = iota
	// Submit is a push button that confirms a form.
	Submit
	// Icon is a push button rendered without chrome.
	Icon
	// Radio is a member of a radio group.
	Radio
)

func (k Kind) String() string {
	switch k {
	case Button:
		return "button"
	case Submit:
		return "submit"
	case Icon:
		return "icon"
	case Radio:
		return "radio"
	default:
		return "unknown"
	}
}

// pushes reports whether the kind reacts to clicks rather than changes.
func (k Kind) pushes() bool {
	return k == Button || k == Submit || k == Icon
}

// Size controls padding around the control.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// PointerType is the device behind a pointer event.
type PointerType string

const (
	PointerNone  PointerType = ""
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)
