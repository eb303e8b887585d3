package validator

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh validator with its defaults applied.
type Factory func() Validator

// Registry maps variant names to factories.
// It is filled at bootstrap and read by every request afterwards.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in variants:
// Number, String, Email and Regex.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Number", func() Validator { return NewNumber() })
	r.Register("String", func() Validator { return NewString() })
	r.Register("Email", func() Validator { return NewEmail() })
	r.Register("Regex", func() Validator { return NewRegex() })
	return r
}

// Register binds name to factory, replacing any previous binding.
//
//	r.Register("Postcode", func() validator.Validator { return NewPostcode() })
func (r *Registry) Register(name string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("validator: nil factory for [%s]", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Make builds a new validator of the named variant.
func (r *Registry) Make(name string) (Validator, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return factory(), nil
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
