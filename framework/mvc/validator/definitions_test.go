package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

const checkoutYAML = `
- param: email
  required: true
  message: Email is required
  validators:
    - type: Email
- param: qty
  validators:
    - type: Number
      params: {min: 1, max: 10, max_error: Ten at most}
- param: coupon
  validators:
    - type: Missing
`

func TestParseDefinitions(t *testing.T) {
	defs, err := validator.ParseDefinitions(strings.NewReader(checkoutYAML))
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "email", defs[0].Param)
	assert.True(t, defs[0].Required)
	assert.Equal(t, "Email is required", defs[0].Message)
	assert.Equal(t, "Number", defs[1].Validators[0].Type)
	assert.Equal(t, 10, defs[1].Validators[0].Params["max"])
}

func TestParseDefinitions_Empty(t *testing.T) {
	defs, err := validator.ParseDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestParseDefinitions_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"not a list":   "param: qty",
		"missing name": "- required: true",
		"missing type": "- param: qty\n  validators:\n    - params: {min: 1}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := validator.ParseDefinitions(strings.NewReader(doc))
			assert.ErrorIs(t, err, validator.ErrInvalidDefinition)
		})
	}
}

func TestManager_Load(t *testing.T) {
	defs, err := validator.ParseDefinitions(strings.NewReader(checkoutYAML))
	require.NoError(t, err)

	b := newBag(map[string]any{"qty": "11", "coupon": "x"})
	m := newManager(b)

	err = m.Load(defs)
	assert.ErrorIs(t, err, validator.ErrUnknownValidator)
	assert.Equal(t, []string{"email", "qty", "coupon"}, m.Parameters())

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Value is not a valid email address", "Email is required"}, b.errors["email"])
	assert.Equal(t, []string{"Ten at most"}, b.errors["qty"])
	assert.Empty(t, b.errors["coupon"])
}

func TestManager_LoadStripOffFromYAML(t *testing.T) {
	defs, err := validator.ParseDefinitions(strings.NewReader(`
- param: qty
  validators:
    - type: Number
      params: {strip: no, min: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, "no", defs[0].Validators[0].Params["strip"])

	b := newBag(map[string]any{"qty": "5x"})
	m := newManager(b)
	require.NoError(t, m.Load(defs))

	assert.False(t, m.Execute())
	assert.Equal(t, []string{"Value is not numeric"}, b.errors["qty"])
	assert.Equal(t, "5x", b.params["qty"])
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shop"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop", "Checkout.yaml"), []byte(checkoutYAML), 0o600))

	defs, err := validator.LoadRules(dir, "shop", "Checkout")
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	defs, err = validator.LoadRules(dir, "shop", "Order")
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadDefinitions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(checkoutYAML), 0o600))

	defs, err := validator.LoadDefinitions(path)
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	_, err = validator.LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
