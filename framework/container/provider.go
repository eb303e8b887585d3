package container

import "sync"

// ServiceProvider binds a group of services into a container.
//
// Register only binds; it must not resolve other services because their
// providers may not be registered yet. Boot runs once every provider is
// registered and may resolve anything.
//
//	type ShopProvider struct{ container.BaseProvider }
//
//	func (p *ShopProvider) Boot(c *container.Container) {
//	    ctrl := container.Resolve[*mvc.Controller](c, "controller")
//	    ctrl.Register("shop", "Order", func() mvc.Action { return &OrderAction{} })
//	}
type ServiceProvider interface {
	Register(c *Container)
	Boot(c *Container)

	// Provides lists the keys a deferred provider binds.
	Provides() []string

	// IsDeferred returns true if Register should wait until one of the
	// Provides keys is first resolved.
	IsDeferred() bool
}

// BaseProvider implements every ServiceProvider hook as a no-op.
type BaseProvider struct{}

func (p *BaseProvider) Register(_ *Container) {}
func (p *BaseProvider) Boot(_ *Container)     {}
func (p *BaseProvider) Provides() []string    { return nil }
func (p *BaseProvider) IsDeferred() bool      { return false }

// ProviderRegistry registers and boots providers against one container.
type ProviderRegistry struct {
	mu         sync.Mutex
	c          *Container
	eager      []ServiceProvider
	registered map[ServiceProvider]bool
	loaded     map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry for c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
		loaded:     make(map[ServiceProvider]bool),
	}
}

// Register adds provider. Registering the same provider twice is a no-op.
// A provider added after Boot is booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	r.mu.Lock()
	if r.registered[provider] {
		r.mu.Unlock()
		return
	}
	r.registered[provider] = true
	booted := r.booted

	if provider.IsDeferred() {
		r.mu.Unlock()
		for _, abstract := range provider.Provides() {
			r.c.Bind(abstract, r.deferredFactory(provider, abstract))
		}
		return
	}
	r.eager = append(r.eager, provider)
	r.mu.Unlock()

	provider.Register(r.c)
	if booted {
		provider.Boot(r.c)
	}
}

// deferredFactory loads provider on first use of abstract, then resolves
// abstract from the bindings the provider made.
func (r *ProviderRegistry) deferredFactory(provider ServiceProvider, abstract string) Factory {
	return func(c *Container) any {
		r.mu.Lock()
		first := !r.loaded[provider]
		r.loaded[provider] = true
		booted := r.booted
		r.mu.Unlock()

		if first {
			provider.Register(c)
			if booted {
				provider.Boot(c)
			}
		}
		return c.Make(abstract)
	}
}

// Boot boots every eager provider once, in registration order.
func (r *ProviderRegistry) Boot() {
	r.mu.Lock()
	if r.booted {
		r.mu.Unlock()
		return
	}
	r.booted = true
	providers := append([]ServiceProvider(nil), r.eager...)
	r.mu.Unlock()

	for _, p := range providers {
		p.Boot(r.c)
	}
}

// Booted returns true once Boot has run.
func (r *ProviderRegistry) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns the eager providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ServiceProvider(nil), r.eager...)
}
