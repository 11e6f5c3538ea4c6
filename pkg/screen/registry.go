package screen

import (
	"slices"

	"github.com/aliace-game/screenlayout/pkg/errors"
)

// Registry maps screen ids to their widget tables. It is populated once at
// process start and treated as read-only afterwards, which makes it safe for
// concurrent readers without locking.
type Registry struct {
	screens     map[string]*Screen
	order       []string
	labelHeight int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLabelHeight overrides the default height assumed for text-only labels
// on screens registered without their own value.
func WithLabelHeight(px int) Option {
	return func(r *Registry) { r.labelHeight = px }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		screens:     make(map[string]*Screen),
		labelHeight: DefaultLabelHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default creates a registry with the two analyzed screens registered.
func Default(opts ...Option) *Registry {
	r := NewRegistry(opts...)

	// The built-in tables are fixed configuration; a registration failure
	// is a programming error, not a runtime condition.
	for _, s := range builtinScreens() {
		if err := r.Register(s.id, s.widgets); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates, compiles, and adds a widget table under the given id.
// Formula errors surface here, at load time.
func (r *Registry) Register(id string, widgets []WidgetSpec) error {
	s := &Screen{ID: id, Widgets: widgets, LabelHeight: r.labelHeight}
	if err := s.compile(); err != nil {
		return err
	}
	if _, dup := r.screens[id]; dup {
		return errors.New(errors.ErrCodeInvalidScreen, "screen %q is already registered", id)
	}
	r.screens[id] = s
	r.order = append(r.order, id)
	return nil
}

// Get returns the screen registered under id.
func (r *Registry) Get(id string) (*Screen, error) {
	s, ok := r.screens[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownScreen, "screen %q is not registered", id)
	}
	return s, nil
}

// IDs returns the registered screen ids in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// LabelHeight returns the default label height applied to registered screens.
func (r *Registry) LabelHeight() int { return r.labelHeight }
