// Package validator provides the per-parameter validation layer of an action.
//
// # Overview
//
// A Manager maps request parameter names to ordered chains of Validators and
// an independent "required" flag. Actions populate it in RegisterValidators;
// the controller then calls Execute once per request.
//
// # Basic Usage
//
//	m := validator.NewManager(req)
//	m.SetRequired("email", true, "Email is required")
//	m.AddValidation("email", "Email", nil)
//	m.AddValidation("qty", "Number", validator.Params{"min": 1, "max": 10})
//
//	if !m.Execute() {
//	    // req.Errors() holds {"errors": {"qty": ["Value is too high"]}}
//	}
//
// # Execution
//
// Parameters are checked in registration order and every parameter is
// always checked. Within one parameter the chain stops at the first
// failing validator and only that validator's message is recorded. A
// validator may normalize the value (Number strips stray characters); the
// Manager writes the normalized value back to the bag.
//
// A required parameter is missing when it is absent, nil, "" or an empty
// list.
//
// # Built-in Variants
//
//   - Number: numeric value with optional min/max, strips junk by default
//   - String: rune-length bounds
//   - Email: single bare address
//   - Regex: must (or must not) match a pattern
//
// Every variant accepts a "message" param that overrides all of its own
// messages.
//
// # Rule Files
//
// Rule sets can be kept in YAML and applied with Manager.Load:
//
//	- param: qty
//	  required: true
//	  validators:
//	    - type: Number
//	      params: {min: 1, max: 10}
package validator
