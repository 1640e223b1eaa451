package domain

import "sync"

// PropertyPath locates an exposed plugin: an optional namespace and a name.
type PropertyPath struct {
	Namespace string
	Name      string
}

// String returns the dotted form of the path, e.g. "myco.testPlugin".
func (p PropertyPath) String() string {
	if p.Namespace == "" {
		return p.Name
	}
	return p.Namespace + PathSeparator + p.Name
}

// BindingState is the lifecycle state of a Binding.
type BindingState int

const (
	// StatePending means the module has not been resolved yet.
	StatePending BindingState = iota
	// StateResolved means the value is memoized. It is terminal.
	StateResolved
)

// String returns the lowercase name of the state.
func (s BindingState) String() string {
	if s == StateResolved {
		return "resolved"
	}
	return "pending"
}

// Binding associates an exposed name with the module behind it.
// A pending binding resolves on the first successful Get and keeps the value;
// a failed resolution leaves it pending so the next Get tries again.
type Binding struct {
	Path    PropertyPath
	RawName string

	mu      sync.Mutex
	state   BindingState
	value   any
	resolve func() (any, error)
}

// NewResolvedBinding creates a binding that already holds its value.
func NewResolvedBinding(path PropertyPath, rawName string, value any) *Binding {
	return &Binding{
		Path:    path,
		RawName: rawName,
		state:   StateResolved,
		value:   value,
	}
}

// NewPendingBinding creates a binding that calls resolve on first access.
func NewPendingBinding(path PropertyPath, rawName string, resolve func() (any, error)) *Binding {
	return &Binding{
		Path:    path,
		RawName: rawName,
		state:   StatePending,
		resolve: resolve,
	}
}

// Get returns the bound value, resolving it first if needed.
// The resolver's error is returned unchanged.
func (b *Binding) Get() (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateResolved {
		return b.value, nil
	}

	value, err := b.resolve()
	if err != nil {
		return nil, err
	}

	b.value = value
	b.state = StateResolved
	b.resolve = nil
	return b.value, nil
}

// State reports whether the binding has been resolved.
func (b *Binding) State() BindingState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
