package app

import (
	"fmt"
	"strconv"

	"github.com/km-arc/go-xmf/framework/mvc"
	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// UnitPrice is the demo price per item.
const UnitPrice = 12.5

// ── default unit ─────────────────────────────────────────────────────────────

// IndexAction is the landing page.
type IndexAction struct{ mvc.BaseAction }

func (a *IndexAction) Execute(ctx *mvc.Context) mvc.View {
	return mvc.Render(mvc.ViewIndex)
}

// LoginAction is where secure actions send anonymous users.
type LoginAction struct{ mvc.BaseAction }

func (a *LoginAction) Execute(ctx *mvc.Context) mvc.View {
	return mvc.Render(mvc.ViewInput)
}

// ── shop unit ────────────────────────────────────────────────────────────────

// OrderAction takes a quantity between 1 and 10 and prices it.
type OrderAction struct{ mvc.BaseAction }

func (a *OrderAction) RequestMethods() mvc.RequestMethod { return mvc.ReqPost }

func (a *OrderAction) RegisterValidators(m *validator.Manager) {
	m.SetRequired("qty", true, "Quantity is required")
	_ = m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10})
	_ = m.AddValidation("note", "String", validator.Params{"max": 140, "trim": true})
}

func (a *OrderAction) Execute(ctx *mvc.Context) mvc.View {
	qty, err := strconv.ParseFloat(ctx.Request.ParameterString("qty"), 64)
	if err != nil {
		return mvc.Render(mvc.ViewError)
	}
	ctx.Request.SetAttribute("qty", qty)
	ctx.Request.SetAttribute("total", fmt.Sprintf("%.2f", qty*UnitPrice))
	return mvc.Render(mvc.ViewSuccess)
}

// CheckoutAction validates from a YAML rule set and needs a signed-in user.
type CheckoutAction struct {
	mvc.BaseAction
	Rules validator.Definitions
}

func (a *CheckoutAction) IsSecure() bool { return true }

func (a *CheckoutAction) Privilege() *mvc.Privilege {
	return &mvc.Privilege{Name: "checkout", Namespace: "shop"}
}

func (a *CheckoutAction) RequestMethods() mvc.RequestMethod { return mvc.ReqPost }

func (a *CheckoutAction) RegisterValidators(m *validator.Manager) {
	// unknown variants are logged by the manager and skipped
	_ = m.Load(a.Rules)
}

func (a *CheckoutAction) Execute(ctx *mvc.Context) mvc.View {
	ctx.Request.SetAttribute("email", ctx.Request.ParameterString("email"))
	return mvc.Render(mvc.ViewSuccess)
}

// HandleError sends the user back to the order form view.
func (a *CheckoutAction) HandleError(ctx *mvc.Context) mvc.View {
	return mvc.Present("shop", "Order", mvc.ViewInput)
}
