package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wraps chi.Router for the action controller.
type Router struct {
	mux chi.Router
}

// New creates a Router with RequestID, RealIP, Logger and Recoverer.
func New() *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	return &Router{mux: r}
}

// NewBare creates a Router without default middleware.
func NewBare() *Router {
	return &Router{mux: chi.NewRouter()}
}

func (r *Router) Get(pattern string, h http.HandlerFunc) { r.mux.Get(pattern, h) }

// Any registers a handler for GET, HEAD and POST, the verbs actions accept.
func (r *Router) Any(pattern string, h http.HandlerFunc) {
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodPost} {
		r.mux.Method(m, pattern, h)
	}
}

// Actions routes "/" and "/{unit}/{action}" to an action controller.
// The controller reads the {unit} and {action} route params.
//
//	router.Actions(app.Controller)
func (r *Router) Actions(h http.Handler) {
	r.Any("/", h.ServeHTTP)
	r.Any("/{unit}/{action}", h.ServeHTTP)
}

// ServeHTTP implements http.Handler so Router can be passed to http.Server.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
