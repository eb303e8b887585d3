package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxMemory = 32 << 20 // 32 MB

// Request wraps *http.Request with the parameter bag, error bag and
// attributes an action works with.
type Request struct {
	raw *http.Request

	params     map[string]any
	loaded     bool
	errors     *Errors
	attributes map[string]any
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{
		raw:        r,
		errors:     &Errors{Bag: make(map[string][]string)},
		attributes: make(map[string]any),
	}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Parameters ───────────────────────────────────────────────────────────────

// Parameter returns a parameter value and whether it was sent.
// Values are string, or []string for repeated keys and "name[]" keys.
func (req *Request) Parameter(name string) (any, bool) {
	req.load()
	v, ok := req.params[name]
	return v, ok
}

// ParameterString returns a parameter as a string (first element for lists),
// or fallback when absent.
func (req *Request) ParameterString(name string, fallback ...string) string {
	v, ok := req.Parameter(name)
	if ok {
		switch s := v.(type) {
		case nil:
		case string:
			return s
		case []string:
			if len(s) > 0 {
				return s[0]
			}
		default:
			return fmt.Sprint(s)
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// SetParameter replaces a parameter value.
func (req *Request) SetParameter(name string, value any) {
	req.load()
	req.params[name] = value
}

// HasParameter returns true if the parameter was sent.
func (req *Request) HasParameter(name string) bool {
	_, ok := req.Parameter(name)
	return ok
}

// RemoveParameter drops a parameter.
func (req *Request) RemoveParameter(name string) {
	req.load()
	delete(req.params, name)
}

// Parameters returns the parameter bag.
func (req *Request) Parameters() map[string]any {
	req.load()
	return req.params
}

// load fills the bag once: route params, then query, then body.
// Later sources win on conflicting names.
func (req *Request) load() {
	if req.loaded {
		return
	}
	req.loaded = true
	req.params = make(map[string]any)

	if rctx := chi.RouteContext(req.raw.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key != "*" && i < len(rctx.URLParams.Values) {
				req.params[key] = rctx.URLParams.Values[i]
			}
		}
	}

	if req.raw.URL != nil {
		mergeValues(req.params, req.raw.URL.Query())
	}

	ct := req.ContentType()
	switch {
	case strings.Contains(ct, "application/json"):
		req.loadJSON()
	case strings.Contains(ct, "multipart/form-data"):
		if err := req.raw.ParseMultipartForm(maxMemory); err == nil && req.raw.MultipartForm != nil {
			mergeValues(req.params, req.raw.MultipartForm.Value)
		}
	default:
		if err := req.raw.ParseForm(); err == nil {
			mergeValues(req.params, req.raw.PostForm)
		}
	}
}

// loadJSON merges the top-level keys of a JSON object body.
// Scalars become strings and scalar arrays become []string; nested objects
// are kept as decoded.
func (req *Request) loadJSON() {
	if req.raw.Body == nil {
		return
	}
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil || len(body) == 0 {
		return
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return
	}
	for k, v := range m {
		req.params[k] = flatten(v)
	}
}

func flatten(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "1"
		}
		return ""
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := flatten(item).(string)
			if !ok {
				return t
			}
			out = append(out, s)
		}
		return out
	}
	return v
}

func mergeValues(dst map[string]any, values map[string][]string) {
	for k, vals := range values {
		if name, ok := strings.CutSuffix(k, "[]"); ok {
			dst[name] = append([]string(nil), vals...)
			continue
		}
		switch len(vals) {
		case 0:
			dst[k] = ""
		case 1:
			dst[k] = vals[0]
		default:
			dst[k] = append([]string(nil), vals...)
		}
	}
}

// ── Errors ───────────────────────────────────────────────────────────────────

// SetError records a validation message for a parameter.
func (req *Request) SetError(name, message string) { req.errors.Add(name, message) }

// Error returns the first message recorded for a parameter.
func (req *Request) Error(name string) string { return req.errors.First(name) }

// HasError returns true if the parameter has a message.
func (req *Request) HasError(name string) bool { return req.errors.HasField(name) }

// HasErrors returns true if any message was recorded.
func (req *Request) HasErrors() bool { return req.errors.Has() }

// Errors returns the error bag.
func (req *Request) Errors() *Errors { return req.errors }

// ── Attributes ───────────────────────────────────────────────────────────────

// SetAttribute stores a value for the view.
func (req *Request) SetAttribute(name string, value any) { req.attributes[name] = value }

// Attribute returns a stored value.
func (req *Request) Attribute(name string) (any, bool) {
	v, ok := req.attributes[name]
	return v, ok
}

// Attributes returns all stored values.
func (req *Request) Attributes() map[string]any { return req.attributes }

// ── Input helpers ────────────────────────────────────────────────────────────

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// BearerToken extracts the token from Authorization: Bearer <token>.
func (req *Request) BearerToken() string {
	auth := req.raw.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
