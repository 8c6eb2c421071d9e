package schema

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/superisaac/jsonschemac/engine"
)

// Validate checks data and returns the normalized value. Pass
// engine.Undefined for an absent value.
func (v *Validator) Validate(data any) engine.Result {
	return engine.Validate(v.root, data)
}

// ValidateCallback is the callback form of Validate, cb is called
// synchronously exactly once.
func (v *Validator) ValidateCallback(data any, cb func(err error, value any)) {
	res := v.Validate(data)
	cb(res.Err(), res.Value)
}

func (v *Validator) ValidateBytes(data []byte) (engine.Result, error) {
	return engine.ValidateBytes(v.root, data)
}

// Engine returns the root of the compiled validator tree.
func (v *Validator) Engine() engine.Validator {
	return v.root
}

func (v *Validator) Type() string {
	return v.root.Type()
}

// Dump renders the compiled tree for debugging.
func (v *Validator) Dump() string {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	return cfg.Sdump(v.root)
}
