// Package mvc dispatches requests to actions.
//
// # Overview
//
// An Action is one unit of business logic. The Controller (the execution
// filter) runs its lifecycle for every request:
//
//  1. IsSecure / Privilege  are checked against the Guard; failures forward
//     to the secure action or end with ErrForbidden
//  2. Initialize            false ends with ErrInitialize
//  3. RequestMethods        a verb outside the mask gets DefaultView
//  4. RegisterValidators    fills a fresh validator.Manager
//  5. Manager.Execute, then Validate
//  6. Execute on success, HandleError otherwise
//
// The returned View is rendered, presented from another action, or
// forwarded to another action which runs its own lifecycle.
//
// # Basic Usage
//
//	type OrderAction struct{ mvc.BaseAction }
//
//	func (a *OrderAction) RegisterValidators(m *validator.Manager) {
//	    m.SetRequired("qty", true)
//	    m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10})
//	}
//
//	func (a *OrderAction) Execute(ctx *mvc.Context) mvc.View {
//	    ctx.Request.SetAttribute("qty", ctx.Request.ParameterString("qty"))
//	    return mvc.Render(mvc.ViewSuccess)
//	}
//
//	ctrl := mvc.NewController(mvc.WithRenderer(mvc.NewTemplateRenderer(engine)))
//	ctrl.Register("shop", "Order", func() mvc.Action { return &OrderAction{} })
//	router.Any("/{unit}/{action}", ctrl.ServeHTTP)
//
// BaseAction supplies every hook except Execute, so an action that forgets
// Execute does not satisfy Action and fails to compile at registration.
package mvc
