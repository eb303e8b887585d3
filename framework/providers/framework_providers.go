package providers

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/go-xmf/framework/config"
	"github.com/km-arc/go-xmf/framework/container"
	gohttp "github.com/km-arc/go-xmf/framework/http"
	"github.com/km-arc/go-xmf/framework/logger"
	"github.com/km-arc/go-xmf/framework/mvc"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
	"github.com/km-arc/go-xmf/framework/routing"
)

// ── ConfigServiceProvider ────────────────────────────────────────────────────

// ConfigServiceProvider binds a loaded configuration.
//
// Bound abstracts:
//   - "config" → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(c *container.Container) {
	c.Instance("config", p.Config)
}

// ── LogServiceProvider ───────────────────────────────────────────────────────

// LogServiceProvider binds the application logger. Without an explicit
// Logger it is built from the Log section of "config".
//
// Bound abstracts:
//   - "logger" → *slog.Logger
type LogServiceProvider struct {
	container.BaseProvider
	Logger *slog.Logger
}

func (p *LogServiceProvider) Register(c *container.Container) {
	if p.Logger != nil {
		c.Instance("logger", p.Logger)
		return
	}
	c.Singleton("logger", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return logger.New(
			logger.WithLevel(logger.ParseLevel(cfg.Log.Level)),
			logger.WithFormat(logger.ParseFormat(cfg.Log.Format)),
			logger.WithAttr(slog.String("app", cfg.App.Name), slog.String("env", cfg.App.Env)),
		)
	})
}

// ── ValidationServiceProvider ────────────────────────────────────────────────

// ValidationServiceProvider binds the validator registry. It is deferred:
// nothing is built until the registry is first resolved.
//
// Bound abstracts:
//   - "validators" → *validator.Registry
type ValidationServiceProvider struct {
	container.BaseProvider
}

func (p *ValidationServiceProvider) Register(c *container.Container) {
	c.Singleton("validators", func(*container.Container) any {
		return validator.DefaultRegistry()
	})
}

func (p *ValidationServiceProvider) Provides() []string { return []string{"validators"} }
func (p *ValidationServiceProvider) IsDeferred() bool   { return true }

// ── ViewServiceProvider ──────────────────────────────────────────────────────

// ViewServiceProvider binds the template engine for the View section of
// "config".
//
// Bound abstracts:
//   - "view" → *gohttp.ViewEngine
type ViewServiceProvider struct {
	container.BaseProvider
}

func (p *ViewServiceProvider) Register(c *container.Container) {
	c.Singleton("view", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return gohttp.NewViewEngine(cfg.View.Dir, cfg.View.Ext)
	})
}

// ── DispatchServiceProvider ──────────────────────────────────────────────────

// DispatchServiceProvider binds the action controller.
//
// Bound abstracts:
//   - "controller" → *mvc.Controller
type DispatchServiceProvider struct {
	container.BaseProvider
}

func (p *DispatchServiceProvider) Register(c *container.Container) {
	c.Singleton("controller", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return mvc.NewController(
			mvc.WithValidators(container.Resolve[*validator.Registry](c, "validators")),
			mvc.WithLogger(container.Resolve[*slog.Logger](c, "logger")),
			mvc.WithRenderer(mvc.NewTemplateRenderer(container.Resolve[*gohttp.ViewEngine](c, "view"))),
			mvc.WithDefaultAction(cfg.Dispatch.DefaultUnit, cfg.Dispatch.DefaultAction),
			mvc.WithSecureAction(cfg.Dispatch.SecureUnit, cfg.Dispatch.SecureAction),
			mvc.WithMaxForwards(cfg.Dispatch.MaxForwards),
		)
	})
}

// ── RoutingServiceProvider ───────────────────────────────────────────────────

// RoutingServiceProvider binds the router. Boot mounts /healthz and the
// action routes on it.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(c *container.Container) {
	c.Singleton("router", func(*container.Container) any {
		return routing.New()
	})
}

func (p *RoutingServiceProvider) Boot(c *container.Container) {
	cfg := container.Resolve[*config.Config](c, "config")
	router := container.Resolve[*routing.Router](c, "router")

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).JSON(http.StatusOK, gohttp.Envelope{"status": "ok", "app": cfg.App.Name})
	})
	router.Actions(container.Resolve[*mvc.Controller](c, "controller"))
}
