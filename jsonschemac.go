// jsonschemac compiles JSON Schema documents into reusable validators that
// check decoded JSON values and return a normalized, defaulted copy.
package jsonschemac

import (
	"github.com/superisaac/jsonschemac/engine"
	"github.com/superisaac/jsonschemac/schema"
)

type Options = schema.Options

type Types = schema.Types

// Undefined stands for an absent value when calling Validate.
var Undefined = engine.Undefined

// Schema compiles a decoded document, either a bool or a
// map[string]any as produced by encoding/json.
func Schema(document any, opts *Options) (*schema.Validator, error) {
	return schema.NewCompiler(opts).Compile(document)
}

// SchemaBytes compiles a JSON document, numbers are kept as json.Number.
func SchemaBytes(data []byte, opts *Options) (*schema.Validator, error) {
	return schema.NewCompiler(opts).CompileBytes(data)
}

func SchemaYAML(data []byte, opts *Options) (*schema.Validator, error) {
	return schema.NewCompiler(opts).CompileYAML(data)
}

// MustSchema is like Schema but panics on a bad document, for package
// level validators.
func MustSchema(document any, opts *Options) *schema.Validator {
	v, err := Schema(document, opts)
	if err != nil {
		panic(err)
	}
	return v
}
