// Package container is the service container behind framework/app.
//
// Services are bound under string keys with Bind (new value per Make),
// Singleton (built once) or Instance (already built), and read back with
// Make or the typed Resolve helper.
//
// ServiceProviders group bindings. A ProviderRegistry calls Register on
// each provider as it is added and Boot on all of them once bootstrap is
// complete. Deferred providers only register when one of their keys is
// first resolved; their Register must bind every key listed in Provides.
//
// The framework binds:
//
//	"app"         *app.Application
//	"config"      *config.Config
//	"logger"      *slog.Logger
//	"validators"  *validator.Registry   (deferred)
//	"view"        *http.ViewEngine
//	"controller"  *mvc.Controller
//	"router"      *routing.Router
package container
