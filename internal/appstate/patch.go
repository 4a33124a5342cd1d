package appstate

// Opt is an optional patch field. The zero value leaves the key untouched.
type Opt[T any] struct {
	set bool
	val T
}

// Set returns an Opt that replaces the key with v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{set: true, val: v}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.set
}

// IsSet reports whether the field carries a value.
func (o Opt[T]) IsSet() bool {
	return o.set
}

func (o Opt[T]) apply(dst *T) {
	if o.set {
		*dst = o.val
	}
}

// Patch is a partial State. Each set field replaces the top-level key as a
// whole; there is no deep merge.
type Patch struct {
	OpenSidebar     Opt[*Sidebar]
	OpenDialog      Opt[*Dialog]
	GridModeEnabled Opt[bool]
	ViewModeEnabled Opt[bool]
	ZenModeEnabled  Opt[bool]
	Theme           Opt[string]
	ActiveTool      Opt[Tool]
	Name            Opt[string]
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return !p.OpenSidebar.set && !p.OpenDialog.set &&
		!p.GridModeEnabled.set && !p.ViewModeEnabled.set &&
		!p.ZenModeEnabled.set && !p.Theme.set &&
		!p.ActiveTool.set && !p.Name.set
}

// Merge returns s with the patch applied. s itself is not modified.
func (s State) Merge(p Patch) State {
	p.OpenSidebar.apply(&s.OpenSidebar)
	p.OpenDialog.apply(&s.OpenDialog)
	p.GridModeEnabled.apply(&s.GridModeEnabled)
	p.ViewModeEnabled.apply(&s.ViewModeEnabled)
	p.ZenModeEnabled.apply(&s.ZenModeEnabled)
	p.Theme.apply(&s.Theme)
	p.ActiveTool.apply(&s.ActiveTool)
	p.Name.apply(&s.Name)
	return s
}

// OpenSidebarOn is a convenience for opening the default sidebar on tab.
func OpenSidebarOn(tab string) Opt[*Sidebar] {
	return Set(&Sidebar{Name: DefaultSidebarName, Tab: tab})
}

// CloseSidebar clears the open sidebar.
func CloseSidebar() Opt[*Sidebar] {
	return Set[*Sidebar](nil)
}

// OpenDialogNamed opens the named dialog.
func OpenDialogNamed(name string) Opt[*Dialog] {
	return Set(&Dialog{Name: name})
}

// CloseDialog clears the open dialog.
func CloseDialog() Opt[*Dialog] {
	return Set[*Dialog](nil)
}
