package action

import "fmt"

// Registry maps action names to definitions. It is built once at startup
// and read-only afterwards, so it carries no lock.
type Registry struct {
	byName map[string]*Action
	order  []*Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Action)}
}

// Register validates def and stores a copy of it.
func (r *Registry) Register(def Action) (*Action, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidAction)
	}
	if def.Perform == nil {
		return nil, fmt.Errorf("%w: %q has no perform func", ErrInvalidAction, def.Name)
	}
	if _, exists := r.byName[def.Name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAction, def.Name)
	}

	a := def
	a.Keywords = append([]string(nil), def.Keywords...)
	r.byName[a.Name] = &a
	r.order = append(r.order, &a)
	return &a, nil
}

// MustRegister is Register for startup code; it panics on a configuration error.
func (r *Registry) MustRegister(def Action) *Action {
	a, err := r.Register(def)
	if err != nil {
		panic(err)
	}
	return a
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (*Action, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Resolve normalizes a name or direct reference to the registered
// definition. A direct reference resolves through its name, so callers
// always run the stored copy.
func (r *Registry) Resolve(ref Ref) (*Action, error) {
	name := ref.Name()
	a, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// All returns the registered actions in registration order.
func (r *Registry) All() []*Action {
	out := make([]*Action, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.order)
}
