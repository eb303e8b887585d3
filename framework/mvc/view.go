package mvc

import (
	"net/http"
	"strings"
)

// View tokens returned by actions.
const (
	ViewAlert   = "alert"
	ViewError   = "error"
	ViewIndex   = "index"
	ViewInput   = "input"
	ViewNone    = ""
	ViewSuccess = "success"
)

// View tells the controller what to present next.
//
// Render(token) presents a view of the current action. Present(unit,
// action, token) presents a view that belongs to another action without
// running it. Forward(unit, action) re-dispatches to another action, which
// then runs its own lifecycle.
type View struct {
	Token  string
	Unit   string
	Action string

	forward bool
}

// Render returns a view of the current action.
func Render(token string) View { return View{Token: token} }

// Present returns a view owned by unit/action.
func Present(unit, action, token string) View {
	return View{Unit: unit, Action: action, Token: token}
}

// Forward returns a view that re-dispatches to unit/action.
func Forward(unit, action string) View {
	return View{Unit: unit, Action: action, forward: true}
}

// IsForward returns true if the view re-dispatches.
func (v View) IsForward() bool { return v.forward }

// IsNone returns true if nothing should be rendered.
func (v View) IsNone() bool { return !v.forward && v.Token == ViewNone }

// ── Request methods ──────────────────────────────────────────────────────────

// RequestMethod is a bit mask of accepted HTTP verbs.
type RequestMethod int

const (
	ReqNone RequestMethod = 1 << iota
	ReqGet
	ReqPost
)

// Accepts returns true if method is in the mask. HEAD counts as GET.
func (m RequestMethod) Accepts(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead:
		return m&ReqGet != 0
	case http.MethodPost:
		return m&ReqPost != 0
	}
	return false
}
