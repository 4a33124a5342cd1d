// Package scene defines the whiteboard elements actions operate on.
package scene

// ElementType identifies the kind of drawn element.
type ElementType string

const (
	TypeRectangle ElementType = "rectangle"
	TypeEllipse   ElementType = "ellipse"
	TypeArrow     ElementType = "arrow"
	TypeLine      ElementType = "line"
	TypeFreedraw  ElementType = "freedraw"
	TypeText      ElementType = "text"
)

// Element is a single drawn shape on the canvas.
// Deleted elements stay in the collection so checkpoints can restore them.
type Element struct {
	ID        string      `json:"id"`
	Type      ElementType `json:"type"`
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Text      string      `json:"text,omitempty"`
	IsDeleted bool        `json:"isDeleted,omitempty"`
	Version   int         `json:"version"`
}

// Clone returns a copy of the slice so callers can't alias the store's backing array.
func Clone(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

// NonDeleted returns the elements that are still visible.
func NonDeleted(elements []Element) []Element {
	var out []Element
	for _, el := range elements {
		if !el.IsDeleted {
			out = append(out, el)
		}
	}
	return out
}

// MarkDeleted returns a new slice where every element is flagged deleted
// and its version bumped. The input is left untouched.
func MarkDeleted(elements []Element) []Element {
	out := Clone(elements)
	for i := range out {
		if !out[i].IsDeleted {
			out[i].IsDeleted = true
			out[i].Version++
		}
	}
	return out
}
