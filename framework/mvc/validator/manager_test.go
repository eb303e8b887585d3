package validator_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// bag is an in-memory ParameterBag.
type bag struct {
	params map[string]any
	errors map[string][]string
}

func newBag(params map[string]any) *bag {
	if params == nil {
		params = map[string]any{}
	}
	return &bag{params: params, errors: map[string][]string{}}
}

func (b *bag) Parameter(name string) (any, bool) {
	v, ok := b.params[name]
	return v, ok
}

func (b *bag) SetParameter(name string, value any) { b.params[name] = value }

func (b *bag) SetError(name, message string) {
	b.errors[name] = append(b.errors[name], message)
}

// stub records calls and returns a fixed result.
type stub struct {
	validator.Base
	ok    bool
	msg   string
	calls *[]string
	name  string
}

func (s *stub) Execute(value any) (any, bool, string) {
	*s.calls = append(*s.calls, s.name)
	return value, s.ok, s.msg
}

func quietLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func newManager(b *bag) *validator.Manager {
	log, _ := quietLogger()
	return validator.NewManager(b, validator.WithLogger(log))
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestManager_QtyScenarios(t *testing.T) {
	tests := []struct {
		in      string
		wantOK  bool
		wantErr string
		wantVal string
	}{
		{"7", true, "", "7"},
		{"abc", false, "Value is not numeric", ""},
		{"15", false, "Value is too high", "15"},
		{" 7a ", true, "", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b := newBag(map[string]any{"qty": tt.in})
			m := newManager(b)
			require.NoError(t, m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10}))

			assert.Equal(t, tt.wantOK, m.Execute())
			if tt.wantErr == "" {
				assert.Empty(t, b.errors["qty"])
			} else {
				assert.Equal(t, []string{tt.wantErr}, b.errors["qty"])
			}
			assert.Equal(t, tt.wantVal, b.params["qty"])
		})
	}
}

func TestManager_RequiredWithoutValidators(t *testing.T) {
	b := newBag(map[string]any{"email": ""})
	m := newManager(b)
	m.SetRequired("email", true)

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Required"}, b.errors["email"])
}

func TestManager_RequiredCustomMessage(t *testing.T) {
	b := newBag(nil)
	m := newManager(b)
	m.SetRequired("email", true, "Email is required")

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Email is required"}, b.errors["email"])
}

func TestManager_RequiredEmptiness(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]any
		wantErr bool
	}{
		{"absent", map[string]any{}, true},
		{"nil", map[string]any{"tags": nil}, true},
		{"empty string", map[string]any{"tags": ""}, true},
		{"empty list", map[string]any{"tags": []string{}}, true},
		{"non-empty list", map[string]any{"tags": []string{"go"}}, false},
		{"zero string", map[string]any{"tags": "0"}, false},
		{"whitespace", map[string]any{"tags": " "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBag(tt.params)
			m := newManager(b)
			m.SetRequired("tags", true)

			assert.Equal(t, !tt.wantErr, m.Execute())
			assert.Equal(t, tt.wantErr, len(b.errors["tags"]) > 0)
		})
	}
}

func TestManager_OptionalWithoutValidatorsNeverFails(t *testing.T) {
	for _, v := range []any{nil, "", "x", []string{}} {
		b := newBag(map[string]any{"p": v})
		m := newManager(b)
		m.SetRequired("p", false)

		assert.True(t, m.Execute())
		assert.Empty(t, b.errors)
	}
}

// ── Ordering / short-circuit ─────────────────────────────────────────────────

func TestManager_ShortCircuitKeepsFirstError(t *testing.T) {
	var calls []string
	b := newBag(map[string]any{"p": "v"})
	m := newManager(b)
	m.Register("p", &stub{ok: false, msg: "A failed", calls: &calls, name: "A"})
	m.Register("p", &stub{ok: false, msg: "B failed", calls: &calls, name: "B"})

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"A"}, calls)
	assert.Equal(t, []string{"A failed"}, b.errors["p"])
}

func TestManager_RunsChainInRegistrationOrder(t *testing.T) {
	var calls []string
	b := newBag(map[string]any{"p": "v"})
	m := newManager(b)
	for _, name := range []string{"A", "B", "C"} {
		m.Register("p", &stub{ok: true, calls: &calls, name: name})
	}

	assert.True(t, m.Execute())
	assert.Equal(t, []string{"A", "B", "C"}, calls)
}

func TestManager_EveryParameterIsChecked(t *testing.T) {
	b := newBag(map[string]any{"a": "x", "b": "y"})
	m := newManager(b)
	require.NoError(t, m.AddValidation("a", "Number", nil))
	require.NoError(t, m.AddValidation("b", "Number", nil))

	assert.False(t, m.Execute())
	assert.Len(t, b.errors, 2)
	assert.Equal(t, []string{"a", "b"}, m.Parameters())
}

func TestManager_OverrideMessageWins(t *testing.T) {
	b := newBag(map[string]any{"qty": "abc"})
	m := newManager(b)
	require.NoError(t, m.AddValidation("qty", "Number", validator.Params{"message": "Enter a quantity"}))

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Enter a quantity"}, b.errors["qty"])
}

func TestManager_SetErrorMessageOverridesRegisteredValidator(t *testing.T) {
	b := newBag(map[string]any{"qty": "15"})
	m := newManager(b)

	n := validator.NewNumber()
	n.Initialize(validator.Params{"max": 10})
	n.SetErrorMessage("Ten at most")
	m.Register("qty", n)

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Ten at most"}, b.errors["qty"])

	n.SetErrorMessage("")
	assert.Equal(t, "", n.ErrorMessage())
}

func TestManager_ValidatorAndRequiredBothRecorded(t *testing.T) {
	b := newBag(map[string]any{"qty": ""})
	m := newManager(b)
	m.SetRequired("qty", true)
	require.NoError(t, m.AddValidation("qty", "Number", nil))

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Value is not numeric", "Required"}, b.errors["qty"])
}

func TestManager_AbsentParameterIsNotCreated(t *testing.T) {
	b := newBag(nil)
	m := newManager(b)
	require.NoError(t, m.AddValidation("qty", "Number", nil))

	m.Execute()
	_, ok := b.params["qty"]
	assert.False(t, ok)
}

// ── Registration ─────────────────────────────────────────────────────────────

func TestManager_RegisterDefaultsToOptional(t *testing.T) {
	m := newManager(newBag(nil))
	m.Register("p", validator.NewNumber())

	r, ok := m.Rule("p")
	require.True(t, ok)
	assert.False(t, r.Required)
	assert.Equal(t, "Required", r.Message)
	assert.Len(t, r.Validators, 1)
}

func TestManager_RegisterKeepsRequiredStatus(t *testing.T) {
	m := newManager(newBag(nil))
	m.SetRequired("p", true, "Need p")
	m.Register("p", validator.NewNumber())
	m.Register("p", validator.NewString())

	r, _ := m.Rule("p")
	assert.True(t, r.Required)
	assert.Equal(t, "Need p", r.Message)
	assert.Len(t, r.Validators, 2)
	assert.Equal(t, []string{"p"}, m.Parameters())
}

func TestManager_SetRequiredOverwrites(t *testing.T) {
	m := newManager(newBag(nil))
	m.SetRequired("p", true, "first")
	m.SetRequired("p", false)

	r, _ := m.Rule("p")
	assert.False(t, r.Required)
	assert.Equal(t, "Required", r.Message)
}

func TestManager_AddValidationUnknownVariant(t *testing.T) {
	log, buf := quietLogger()
	b := newBag(map[string]any{"qty": "5"})
	m := validator.NewManager(b, validator.WithLogger(log))

	err := m.AddValidation("qty", "Nope", validator.Params{"min": 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrUnknownValidator))
	assert.Contains(t, buf.String(), "validator not registered")
	assert.Contains(t, buf.String(), "Nope")

	_, ok := m.Rule("qty")
	assert.False(t, ok)

	require.NoError(t, m.AddValidation("qty", "Number", validator.Params{"min": 1}))
	assert.True(t, m.Execute())
}

func TestManager_CustomRegistry(t *testing.T) {
	reg := validator.NewRegistry()
	var calls []string
	reg.Register("Always", func() validator.Validator {
		return &stub{ok: false, msg: "always fails", calls: &calls, name: "Always"}
	})

	b := newBag(map[string]any{"p": "v"})
	log, _ := quietLogger()
	m := validator.NewManager(b, validator.WithRegistry(reg), validator.WithLogger(log))

	require.NoError(t, m.AddValidation("p", "Always", nil))
	assert.Error(t, m.AddValidation("p", "Number", nil))
	assert.False(t, m.Execute())
	assert.Equal(t, []string{"always fails"}, b.errors["p"])
}

// ── IsEmpty ──────────────────────────────────────────────────────────────────

func TestIsEmpty(t *testing.T) {
	assert.True(t, validator.IsEmpty(nil))
	assert.True(t, validator.IsEmpty(""))
	assert.True(t, validator.IsEmpty([]string{}))
	assert.True(t, validator.IsEmpty([]any{}))
	assert.False(t, validator.IsEmpty("0"))
	assert.False(t, validator.IsEmpty([]string{""}))
	assert.False(t, validator.IsEmpty(0))
}
