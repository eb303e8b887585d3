package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/km-arc/go-xmf/framework/config"
	"github.com/km-arc/go-xmf/framework/container"
	gohttp "github.com/km-arc/go-xmf/framework/http"
	"github.com/km-arc/go-xmf/framework/mvc"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
	"github.com/km-arc/go-xmf/framework/providers"
	"github.com/km-arc/go-xmf/framework/routing"
)

// Application is the service container of a running site. It embeds the
// Container and the ProviderRegistry, so user code binds and resolves
// services on it directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// Option customises bootstrap.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger replaces the logger built from configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New loads configuration from the given env files and registers the
// framework providers.
//
//	application, err := app.New(nil)
//	application.Register(&shop.ServiceProvider{})
//	application.Run(ctx)
func New(envFiles []string, opts ...Option) (*Application, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := container.New()
	registry := container.NewProviderRegistry(c)
	application := &Application{Container: c, Providers: registry}
	c.Instance("app", application)

	registry.Register(&providers.ConfigServiceProvider{Config: cfg})
	registry.Register(&providers.LogServiceProvider{Logger: o.logger})
	registry.Register(&providers.ValidationServiceProvider{})
	registry.Register(&providers.ViewServiceProvider{})
	registry.Register(&providers.DispatchServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return application, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot phase of every provider. A provider that panics while
// booting, e.g. on a broken rule file, is reported as an error.
func (a *Application) Boot() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("app: boot failed: %v", r)
		}
	}()
	a.Providers.Boot()
	return nil
}

// ── Services ─────────────────────────────────────────────────────────────────

func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "logger")
}

func (a *Application) Validators() *validator.Registry {
	return container.Resolve[*validator.Registry](a.Container, "validators")
}

func (a *Application) Views() *gohttp.ViewEngine {
	return container.Resolve[*gohttp.ViewEngine](a.Container, "view")
}

func (a *Application) Controller() *mvc.Controller {
	return container.Resolve[*mvc.Controller](a.Container, "controller")
}

func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Action adds an action to the controller.
func (a *Application) Action(unit, action string, factory mvc.Factory) {
	a.Controller().Register(unit, action, factory)
}

// SetGuard sets the guard consulted for secure actions.
func (a *Application) SetGuard(g mvc.Guard) {
	a.Controller().SetGuard(g)
}

// Rules loads the YAML rule set of unit/action from the rules directory.
// A missing file yields an empty set.
func (a *Application) Rules(unit, action string) (validator.Definitions, error) {
	return validator.LoadRules(a.Config().Dispatch.RulesDir, unit, action)
}

// Run boots the application if needed, serves on APP_PORT and shuts down
// when ctx ends.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	cfg, log := a.Config(), a.Logger()
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", srv.Addr), slog.String("url", cfg.App.URL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("server stopping")
		return srv.Shutdown(shutdownCtx)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsProduction() bool  { return a.Config().IsProduction() }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
