package validator

import (
	"log/slog"
)

// DefaultRequiredMessage is recorded for a required parameter that is empty.
const DefaultRequiredMessage = "Required"

// ParameterBag is the request-side storage the Manager validates.
type ParameterBag interface {
	// Parameter returns the raw value and whether the parameter was sent.
	Parameter(name string) (any, bool)
	// SetParameter replaces a parameter value.
	SetParameter(name string, value any)
	// SetError records a validation message against a parameter.
	SetError(name, message string)
}

// Rule is the validation state of one parameter.
type Rule struct {
	Name       string
	Required   bool
	Message    string
	Validators []Validator

	requiredSet bool
}

// Manager associates parameter names with ordered validator chains and runs
// them against a ParameterBag. One Manager serves one request.
type Manager struct {
	bag      ParameterBag
	registry *Registry
	logger   *slog.Logger

	rules map[string]*Rule
	order []string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRegistry sets the registry AddValidation looks variants up in.
func WithRegistry(r *Registry) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// WithLogger sets the logger configuration warnings go to.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a Manager bound to bag.
// Without WithRegistry the built-in variants are available.
func NewManager(bag ParameterBag, opts ...ManagerOption) *Manager {
	m := &Manager{
		bag:   bag,
		rules: make(map[string]*Rule),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = DefaultRegistry()
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// ── Registration ─────────────────────────────────────────────────────────────

// Register appends v to the validator chain of name.
// A parameter without a required status becomes optional.
func (m *Manager) Register(name string, v Validator) {
	r := m.rule(name)
	r.Validators = append(r.Validators, v)
	if !r.requiredSet {
		m.SetRequired(name, false)
	}
}

// SetRequired sets the required flag of name. The optional message replaces
// DefaultRequiredMessage; an empty message keeps the default.
func (m *Manager) SetRequired(name string, required bool, message ...string) {
	r := m.rule(name)
	r.Required = required
	r.requiredSet = true
	r.Message = DefaultRequiredMessage
	if len(message) > 0 && message[0] != "" {
		r.Message = message[0]
	}
}

// AddValidation builds the named variant, initializes it with params and
// registers it for name. An unknown variant is logged and skipped; the
// returned error wraps ErrUnknownValidator and need not stop the caller.
//
//	m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10})
func (m *Manager) AddValidation(name, variant string, params Params) error {
	v, err := m.registry.Make(variant)
	if err != nil {
		m.logger.Warn("validator not registered",
			slog.String("param", name),
			slog.String("validator", variant),
		)
		return err
	}
	if len(params) > 0 {
		v.Initialize(params)
	}
	m.Register(name, v)
	return nil
}

func (m *Manager) rule(name string) *Rule {
	if r, ok := m.rules[name]; ok {
		return r
	}
	r := &Rule{Name: name, Message: DefaultRequiredMessage}
	m.rules[name] = r
	m.order = append(m.order, name)
	return r
}

// ── Execution ────────────────────────────────────────────────────────────────

// Execute validates every registered parameter and returns true when none
// produced an error. Messages are recorded on the bag.
//
// For each parameter the validators run in registration order and stop at
// the first failure. The required check runs independently of the chain.
func (m *Manager) Execute() bool {
	success := true

	for _, name := range m.order {
		r := m.rules[name]
		value, present := m.bag.Parameter(name)

		for _, v := range r.Validators {
			normalized, ok, message := v.Execute(value)
			if present {
				m.bag.SetParameter(name, normalized)
			}
			value = normalized

			if !ok {
				if override := v.ErrorMessage(); override != "" {
					message = override
				}
				m.bag.SetError(name, message)
				success = false
				break
			}
		}

		if r.Required && IsEmpty(value) {
			m.bag.SetError(name, r.Message)
			success = false
		}
	}

	return success
}

// ── Introspection ────────────────────────────────────────────────────────────

// Parameters returns the registered parameter names in registration order.
func (m *Manager) Parameters() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Rule returns the rule of name.
func (m *Manager) Rule(name string) (Rule, bool) {
	r, ok := m.rules[name]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// IsEmpty reports whether a parameter value counts as missing:
// nil, an empty string, or an empty list.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
