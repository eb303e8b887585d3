package container

import (
	"fmt"
	"sync"
)

// Factory builds a service, resolving its own dependencies from c.
type Factory func(c *Container) any

type binding struct {
	factory   Factory
	singleton bool
}

// Container holds the services of an application under string keys.
//
//	c.Singleton("validators", func(*container.Container) any {
//	    return validator.DefaultRegistry()
//	})
//	reg := container.Resolve[*validator.Registry](c, "validators")
type Container struct {
	mu        sync.RWMutex
	bindings  map[string]*binding
	instances map[string]any
	aliases   map[string]string
}

// New creates an empty container. The container is bound to itself as
// "container".
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ─────────────────────────────────────────────────────────────

// Bind registers a factory that runs on every Make.
func (c *Container) Bind(abstract string, factory Factory) {
	c.bind(abstract, factory, false)
}

// Singleton registers a factory whose first result is kept.
func (c *Container) Singleton(abstract string, factory Factory) {
	c.bind(abstract, factory, true)
}

func (c *Container) bind(abstract string, factory Factory, singleton bool) {
	if factory == nil {
		panic(fmt.Sprintf("container: nil factory for [%s]", abstract))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Instance registers an already built value.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// Alias makes alias resolve to abstract.
func (c *Container) Alias(abstract, alias string) {
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Make resolves abstract. It panics when nothing is bound under that key:
// a missing service is a bootstrap bug.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	// factories may resolve other services, so no lock is held here
	instance := b.factory(c)
	if !b.singleton {
		return instance
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.bindings[key]; !ok || current != b {
		// rebound while building; do not cache a stale instance
		return instance
	}
	if inst, ok := c.instances[key]; ok {
		return inst
	}
	c.instances[key] = instance
	return instance
}

// Bound returns true if abstract has a binding or an instance.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved returns true if abstract holds a built instance.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// canonical must be called with mu held.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// Resolve calls Make and asserts the result to T.
//
//	ctrl := container.Resolve[*mvc.Controller](c, "controller")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}
