package ui

import "testing"

func TestBase_SizeAndInner(t *testing.T) {
	var b Base
	b.SetSize(20, 6)
	if b.Width() != 20 || b.Height() != 6 {
		t.Fatalf("size = %dx%d, want 20x6", b.Width(), b.Height())
	}
	if b.InnerWidth() != 18 || b.InnerHeight() != 4 {
		t.Errorf("inner = %dx%d, want 18x4", b.InnerWidth(), b.InnerHeight())
	}

	b.SetSize(1, -3)
	if b.Height() != 0 {
		t.Errorf("negative height kept: %d", b.Height())
	}
	if b.InnerWidth() != 0 {
		t.Errorf("InnerWidth() = %d, want 0", b.InnerWidth())
	}
}

func TestBase_Focus(t *testing.T) {
	var b Base
	if b.IsFocused() {
		t.Fatal("zero Base should not be focused")
	}
	b.SetFocused(true)
	if !b.IsFocused() {
		t.Error("SetFocused(true) not kept")
	}
}
