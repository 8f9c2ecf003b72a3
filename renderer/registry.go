package renderer

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/iw2rmb/formslot/form"
)

var (
	ErrInvalidRegistration = goerr.New("invalid renderer registration")
	ErrAlreadyRegistered   = goerr.New("renderer already registered")
)

// Registry maps field type codes to renderer factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[form.FieldType]Factory
	order     []form.FieldType
	style     Style
}

// NewRegistry returns an empty registry whose renderers use st.
func NewRegistry(st Style) *Registry {
	return &Registry{
		factories: make(map[form.FieldType]Factory),
		style:     st,
	}
}

// NewDefaultRegistry returns a registry with every built-in renderer.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(DefaultStyle())
	for _, b := range builtins() {
		// Built-in codes are distinct; Register cannot fail here.
		_ = r.Register(b.code, b.factory)
	}
	return r
}

// Register associates code with f.
func (r *Registry) Register(code form.FieldType, f Factory) error {
	if code == "" {
		return goerr.Wrap(ErrInvalidRegistration, "empty field type code")
	}
	if f == nil {
		return goerr.Wrap(ErrInvalidRegistration, "nil factory", goerr.V("code", code))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[code]; exists {
		return goerr.Wrap(ErrAlreadyRegistered, "duplicate field type code", goerr.V("code", code))
	}
	r.factories[code] = f
	r.order = append(r.order, code)
	return nil
}

// RendererFor creates a new renderer bound to def. The lookup depends only on
// def.Code, so callers must query again after a type switch.
func (r *Registry) RendererFor(def *form.Definition) (Renderer, bool) {
	if def == nil {
		return nil, false
	}
	r.mu.RLock()
	f, ok := r.factories[def.Code]
	st := r.style
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	rr := f(def, st)
	if rr == nil {
		return nil, false
	}
	return rr, true
}

func (r *Registry) Supports(code form.FieldType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[code]
	return ok
}

// Codes returns the registered codes in registration order.
func (r *Registry) Codes() []form.FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]form.FieldType(nil), r.order...)
}
