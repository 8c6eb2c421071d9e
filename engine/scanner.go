package engine

import (
	"bytes"
	"fmt"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/pkg/errors"
)

func NewScanner() *Scanner {
	return &Scanner{}
}

func (scanner *Scanner) NewError(kind string, hint string) *ValidationError {
	var newPaths []string
	newPaths = append(newPaths, scanner.paths...)
	return &ValidationError{Kind: kind, paths: newPaths, label: scanner.label(), hint: hint}
}

// Errorf builds an error on the current path.
func (scanner *Scanner) Errorf(kind string, format string, args ...any) *ValidationError {
	return scanner.NewError(kind, fmt.Sprintf(format, args...))
}

func (scanner *Scanner) label() string {
	if len(scanner.paths) == 0 {
		return "value"
	}
	last := scanner.paths[len(scanner.paths)-1]
	if len(last) > 0 && last[0] == '.' {
		return last[1:]
	}
	return last
}

func (scanner *Scanner) pushPath(path string) {
	if path != "" {
		scanner.paths = append(scanner.paths, path)
	}
}

func (scanner *Scanner) popPath(path string) {
	if path != "" {
		if len(scanner.paths) < 1 || scanner.paths[len(scanner.paths)-1] != path {
			panic(errors.Errorf("pop path %s is different from stack top", path))
		}
		scanner.paths = scanner.paths[:len(scanner.paths)-1]
	}
}

// Scan runs validator on data under path. Absent data is resolved here: a
// Defaulter supplies its default, which is then scanned like a present
// value so nested defaults fill in; anything else passes Undefined through.
func (scanner *Scanner) Scan(validator Validator, path string, data any) (any, *ValidationError) {
	if IsUndefined(data) {
		d, ok := validator.(Defaulter)
		if !ok {
			return data, nil
		}
		v, ok := d.DefaultValue()
		if !ok {
			return data, nil
		}
		data = v
	}
	scanner.pushPath(path)
	defer scanner.popPath(path)
	return validator.Scan(scanner, data)
}

// Validate scans data from the root with a fresh scanner.
func Validate(validator Validator, data any) Result {
	value, verr := NewScanner().Scan(validator, "", data)
	if verr != nil {
		return Result{Value: data, Error: verr}
	}
	return Result{Value: value}
}

// ValidateBytes decodes a JSON payload, numbers kept as json.Number, and
// validates it.
func ValidateBytes(validator Validator, data []byte) (Result, error) {
	parsed, err := simplejson.NewFromReader(bytes.NewReader(data))
	if err != nil {
		return Result{}, errors.Wrap(err, "simplejson.NewFromReader")
	}
	return Validate(validator, parsed.Interface()), nil
}
