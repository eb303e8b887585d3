package mvc

import (
	"context"
	"log/slog"

	gohttp "github.com/km-arc/go-xmf/framework/http"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// Context is what an action sees of the current dispatch.
type Context struct {
	context.Context

	Request *gohttp.Request
	Unit    string
	Action  string
	Logger  *slog.Logger
}

// Privilege names a permission an action requires.
type Privilege struct {
	Name      string
	Namespace string
}

// Action is a unit of business logic run by the Controller.
//
// Embed BaseAction to inherit the default hooks and implement Execute:
//
//	type OrderAction struct{ mvc.BaseAction }
//
//	func (a *OrderAction) RegisterValidators(m *validator.Manager) {
//	    m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10})
//	}
//
//	func (a *OrderAction) Execute(ctx *mvc.Context) mvc.View {
//	    return mvc.Render(mvc.ViewSuccess)
//	}
type Action interface {
	// Initialize runs before validation. Returning false aborts dispatch.
	Initialize(ctx *Context) bool

	// IsSecure returns true if the action needs an authenticated user.
	IsSecure() bool

	// Privilege returns the permission a secure action needs, or nil.
	Privilege() *Privilege

	// RequestMethods returns the verbs that trigger validation and Execute.
	// Other verbs get DefaultView.
	RequestMethods() RequestMethod

	// RegisterValidators populates the parameter rules.
	RegisterValidators(m *validator.Manager)

	// Validate runs whole-request checks after the parameter rules passed.
	Validate(ctx *Context) bool

	// Execute runs the business logic.
	Execute(ctx *Context) View

	// HandleError is called instead of Execute when validation failed.
	HandleError(ctx *Context) View

	// DefaultView is used when the request method is not accepted.
	DefaultView(ctx *Context) View
}

// Factory builds a fresh action for one request.
type Factory func() Action

// BaseAction provides every Action hook except Execute.
type BaseAction struct{}

func (BaseAction) Initialize(*Context) bool              { return true }
func (BaseAction) IsSecure() bool                        { return false }
func (BaseAction) Privilege() *Privilege                 { return nil }
func (BaseAction) RequestMethods() RequestMethod         { return ReqGet | ReqPost }
func (BaseAction) RegisterValidators(*validator.Manager) {}
func (BaseAction) Validate(*Context) bool                { return true }
func (BaseAction) HandleError(*Context) View             { return Render(ViewError) }
func (BaseAction) DefaultView(*Context) View             { return Render(ViewInput) }
