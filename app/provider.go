package app

import (
	"fmt"

	"github.com/km-arc/go-xmf/framework/config"
	"github.com/km-arc/go-xmf/framework/container"
	"github.com/km-arc/go-xmf/framework/mvc"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// ServiceProvider registers the demo units.
//
// Bound abstracts:
//   - "guard" → *TokenGuard, built from APP_TOKENS
type ServiceProvider struct {
	container.BaseProvider
}

func (p *ServiceProvider) Register(c *container.Container) {
	c.Singleton("guard", func(c *container.Container) any {
		return NewTokenGuard(container.Resolve[*config.Config](c, "config").Auth.Tokens)
	})
}

// Boot installs the guard and the actions. A broken rule file panics so
// that bootstrap stops.
func (p *ServiceProvider) Boot(c *container.Container) {
	cfg := container.Resolve[*config.Config](c, "config")
	ctrl := container.Resolve[*mvc.Controller](c, "controller")

	checkoutRules, err := validator.LoadRules(cfg.Dispatch.RulesDir, "shop", "Checkout")
	if err != nil {
		panic(fmt.Errorf("shop/Checkout rules: %w", err))
	}

	ctrl.SetGuard(container.Resolve[*TokenGuard](c, "guard"))
	ctrl.Register("default", "Index", func() mvc.Action { return &IndexAction{} })
	ctrl.Register("default", "Login", func() mvc.Action { return &LoginAction{} })
	ctrl.Register("shop", "Order", func() mvc.Action { return &OrderAction{} })
	ctrl.Register("shop", "Checkout", func() mvc.Action {
		return &CheckoutAction{Rules: checkoutRules}
	})
}
