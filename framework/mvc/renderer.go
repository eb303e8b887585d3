package mvc

import (
	"bytes"
	"net/http"

	gohttp "github.com/km-arc/go-xmf/framework/http"
)

// TemplateRenderer renders views through a ViewEngine.
//
// A view resolves to the template "<unit>/<action>_<token>", e.g.
// views/shop/Order_success.html. Requests that expect JSON, or a renderer
// without an engine, get a JSON document instead:
//
//	{"view": "error", "unit": "shop", "action": "Order", "data": {...}, "errors": {...}}
type TemplateRenderer struct {
	engine *gohttp.ViewEngine
}

// NewTemplateRenderer creates a TemplateRenderer. engine may be nil.
func NewTemplateRenderer(engine *gohttp.ViewEngine) *TemplateRenderer {
	return &TemplateRenderer{engine: engine}
}

// Render implements Renderer.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, ctx *Context, view View) error {
	req := ctx.Request

	if tr.engine == nil || req.IsJSON() {
		status := http.StatusOK
		if view.Token == ViewError && req.HasErrors() {
			status = http.StatusUnprocessableEntity
		}
		gohttp.NewResponse(w).JSON(status, gohttp.Envelope{
			"view":   view.Token,
			"unit":   view.Unit,
			"action": view.Action,
			"data":   req.Attributes(),
			"errors": req.Errors().Bag,
		})
		return nil
	}

	var buf bytes.Buffer
	err := tr.engine.Render(&buf, TemplateName(view), map[string]any{
		"Unit":       view.Unit,
		"Action":     view.Action,
		"View":       view.Token,
		"Attributes": req.Attributes(),
		"Params":     req.Parameters(),
		"Errors":     req.Errors(),
	})
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}

// TemplateName returns the template a view resolves to.
func TemplateName(view View) string {
	return view.Unit + "/" + view.Action + "_" + view.Token
}
