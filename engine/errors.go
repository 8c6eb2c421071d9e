package engine

import (
	"fmt"
	"strings"
)

// error kinds, named after the rule that failed
const (
	KindRequired     = "any.required"
	KindUnknown      = "any.unknown"
	KindOnly         = "any.only"
	KindInvalid      = "any.invalid"
	KindNull         = "null.base"
	KindBool         = "boolean.base"
	KindNumber       = "number.base"
	KindInteger      = "number.integer"
	KindNumberMin    = "number.min"
	KindNumberMax    = "number.max"
	KindNumberGt     = "number.greater"
	KindNumberLt     = "number.less"
	KindMultiple     = "number.multiple"
	KindString       = "string.base"
	KindStringMin    = "string.min"
	KindStringMax    = "string.max"
	KindPattern      = "string.pattern.base"
	KindFormat       = "string.format"
	KindObject       = "object.base"
	KindObjectKey    = "object.unknown"
	KindObjectMin    = "object.min"
	KindObjectMax    = "object.max"
	KindArray        = "array.base"
	KindArrayMin     = "array.min"
	KindArrayMax     = "array.max"
	KindArrayExtra   = "array.excludes"
	KindArrayUnique  = "array.unique"
	KindNoMatch      = "alternatives.match"
	KindAmbiguous    = "alternatives.one"
	KindForbiddenHit = "alternatives.not"
)

func (verr ValidationError) Path() string {
	return strings.Join(verr.paths, "")
}

func (verr ValidationError) Paths() []string {
	return verr.paths
}

func (verr ValidationError) Label() string {
	return verr.label
}

func (verr ValidationError) Hint() string {
	return verr.hint
}

func (verr ValidationError) Error() string {
	return fmt.Sprintf("\"%s\" %s", verr.label, verr.hint)
}

// Innermost follows the first detail chain down to the error that caused
// a combinator to fail.
func (verr *ValidationError) Innermost() *ValidationError {
	cur := verr
	for len(cur.Details) > 0 {
		cur = cur.Details[0]
	}
	return cur
}
