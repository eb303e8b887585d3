package mvc

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	gohttp "github.com/km-arc/go-xmf/framework/http"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// Guard answers the security questions of secure actions.
type Guard interface {
	Authenticated(ctx *Context) bool
	Authorized(ctx *Context, p *Privilege) bool
}

// Renderer presents the final view of a dispatch.
type Renderer interface {
	Render(w http.ResponseWriter, ctx *Context, view View) error
}

// Controller is the execution filter: it looks actions up by unit/action,
// runs their lifecycle and hands the resulting view to a Renderer.
type Controller struct {
	mu      sync.RWMutex
	actions map[string]Factory

	registry *validator.Registry
	logger   *slog.Logger
	guard    Guard
	renderer Renderer

	defaultUnit, defaultAction string
	secureUnit, secureAction   string
	maxForwards                int
}

// Option configures a Controller.
type Option func(*Controller)

// WithValidators sets the registry handed to every validator.Manager.
func WithValidators(r *validator.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithGuard(g Guard) Option {
	return func(c *Controller) { c.guard = g }
}

func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithDefaultAction sets the action served when a request names none.
func WithDefaultAction(unit, action string) Option {
	return func(c *Controller) { c.defaultUnit, c.defaultAction = unit, action }
}

// WithSecureAction sets the action unauthenticated users are forwarded to.
func WithSecureAction(unit, action string) Option {
	return func(c *Controller) { c.secureUnit, c.secureAction = unit, action }
}

// WithMaxForwards bounds forward chains.
func WithMaxForwards(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxForwards = n
		}
	}
}

// NewController creates a Controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		actions:       make(map[string]Factory),
		logger:        slog.Default(),
		defaultUnit:   "default",
		defaultAction: "Index",
		maxForwards:   8,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = validator.DefaultRegistry()
	}
	return c
}

// ── Registration ─────────────────────────────────────────────────────────────

// Register binds unit/action to a factory.
//
//	ctrl.Register("shop", "Order", func() mvc.Action { return &OrderAction{} })
func (c *Controller) Register(unit, action string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions[key(unit, action)] = factory
}

// SetGuard replaces the guard. Call it before serving requests.
func (c *Controller) SetGuard(g Guard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guard = g
}

// Has returns true if unit/action is registered.
func (c *Controller) Has(unit, action string) bool {
	_, ok := c.lookup(unit, action)
	return ok
}

func (c *Controller) lookup(unit, action string) (Factory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.actions[key(unit, action)]
	return f, ok
}

func key(unit, action string) string { return unit + "/" + action }

// ── Lifecycle ────────────────────────────────────────────────────────────────

// Run executes the lifecycle of a for one request and returns its view.
func (c *Controller) Run(ctx *Context, a Action) (View, error) {
	if ctx.Logger == nil {
		ctx.Logger = c.logger
	}

	if a.IsSecure() && !c.allowed(ctx, a) {
		if c.secureAction == "" || (ctx.Unit == c.secureUnit && ctx.Action == c.secureAction) {
			return View{}, ErrForbidden
		}
		ctx.Logger.Info("forwarding to secure action")
		return Forward(c.secureUnit, c.secureAction), nil
	}

	if !a.Initialize(ctx) {
		return View{}, ErrInitialize
	}

	if !a.RequestMethods().Accepts(ctx.Request.Method()) {
		return a.DefaultView(ctx), nil
	}

	m := validator.NewManager(ctx.Request,
		validator.WithRegistry(c.registry),
		validator.WithLogger(ctx.Logger),
	)
	a.RegisterValidators(m)

	if m.Execute() && a.Validate(ctx) {
		return a.Execute(ctx), nil
	}
	ctx.Logger.Debug("validation failed", slog.Any("errors", ctx.Request.Errors().Bag))
	return a.HandleError(ctx), nil
}

func (c *Controller) allowed(ctx *Context, a Action) bool {
	c.mu.RLock()
	guard := c.guard
	c.mu.RUnlock()

	if guard == nil || !guard.Authenticated(ctx) {
		return false
	}
	if p := a.Privilege(); p != nil {
		return guard.Authorized(ctx, p)
	}
	return true
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

// Dispatch runs unit/action, follows forwards and renders the final view.
func (c *Controller) Dispatch(w http.ResponseWriter, r *http.Request, unit, action string) error {
	req := gohttp.NewRequest(r)

	for hops := 0; ; hops++ {
		if hops > c.maxForwards {
			return fmt.Errorf("%w: stopped at %s/%s", ErrForwardLoop, unit, action)
		}

		factory, ok := c.lookup(unit, action)
		if !ok {
			return fmt.Errorf("%w: %s/%s", ErrActionNotFound, unit, action)
		}

		ctx := &Context{
			Context: r.Context(),
			Request: req,
			Unit:    unit,
			Action:  action,
			Logger:  c.logger.With(slog.String("unit", unit), slog.String("action", action)),
		}

		view, err := c.Run(ctx, factory())
		if err != nil {
			return err
		}
		if view.IsForward() {
			unit, action = view.Unit, view.Action
			continue
		}

		if view.Action == "" {
			view.Unit, view.Action = unit, action
		}
		if c.renderer == nil || view.IsNone() {
			return nil
		}
		return c.renderer.Render(w, ctx, view)
	}
}

// ServeHTTP resolves unit/action from the {unit} and {action} route params,
// then the "unit"/"action" query values, then the default action.
func (c *Controller) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unit, action := chi.URLParam(r, "unit"), chi.URLParam(r, "action")
	if unit == "" {
		unit = r.URL.Query().Get("unit")
	}
	if action == "" {
		action = r.URL.Query().Get("action")
	}
	if unit == "" && action == "" {
		unit, action = c.defaultUnit, c.defaultAction
	}

	err := c.Dispatch(w, r, unit, action)
	if err == nil {
		return
	}

	res := gohttp.NewResponse(w)
	switch {
	case errors.Is(err, ErrActionNotFound):
		res.NotFound()
	case errors.Is(err, ErrForbidden):
		res.Forbidden()
	default:
		c.logger.Error("dispatch failed",
			slog.String("unit", unit),
			slog.String("action", action),
			slog.Any("error", err),
		)
		res.ServerError()
	}
}
