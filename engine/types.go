// Package engine walks decoded JSON values against trees of validator
// primitives. Validators are immutable once built; all per-call state lives
// in a Scanner.
package engine

import (
	"regexp"
)

type undefined struct{}

// Undefined marks an absent value, distinct from JSON null.
var Undefined any = undefined{}

func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

type Validator interface {
	Type() string
	// Scan checks data and returns the normalized value. data is never
	// Undefined, the scanner resolves absent values before calling Scan.
	Scan(scanner *Scanner, data any) (any, *ValidationError)
}

// Defaulter is implemented by validators that can supply a value for an
// absent key.
type Defaulter interface {
	DefaultValue() (any, bool)
}

// Scanner keeps the path stack of one validation call.
type Scanner struct {
	paths []string
}

type ValidationError struct {
	Kind    string
	paths   []string
	label   string
	hint    string
	Details []*ValidationError
}

type Result struct {
	Value any
	Error *ValidationError
}

// primitives
type AnyValidator struct{}

type NeverValidator struct{}

type NullValidator struct{}

type BoolValidator struct{}

type NumberValidator struct {
	Integer          bool
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

type FormatChecker func(string) bool

type StringValidator struct {
	MinLength   *int
	MaxLength   *int
	Pattern     *regexp.Regexp
	Format      string
	CheckFormat FormatChecker
}

// object keys
type UnknownPolicy int

const (
	UnknownAllow UnknownPolicy = iota
	UnknownForbid
	UnknownValidate
)

type Key struct {
	Name      string
	Validator Validator
	Required  bool
}

// Implicit shapes come from object keywords without a type, values that
// are not objects pass through them unchanged.
type ObjectValidator struct {
	Implicit      bool
	Keys          []Key
	Unknown       UnknownPolicy
	UnknownSchema Validator
	MinProperties *int
	MaxProperties *int
}

type ArrayValidator struct {
	// Implicit as in ObjectValidator
	Implicit bool
	Items    Validator
	Tuple    []Validator
	// Additional applies to positions past Tuple, same policies as object
	// keys.
	Additional       UnknownPolicy
	AdditionalSchema Validator
	MinItems         *int
	MaxItems         *int
	UniqueItems      bool
}

// composits
type AllValidator struct {
	Branches []Validator
}

type AnyOfValidator struct {
	Branches []Validator
}

type OneOfValidator struct {
	Branches []Validator
}

type NotValidator struct {
	Branches []Validator
}

// modifiers
type EnumValidator struct {
	Values []any
	Inner  Validator
}

type ConstValidator struct {
	Value any
}

type DefaultValidator struct {
	Value any
	Inner Validator
}
