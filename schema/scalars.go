package schema

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsonschemac/engine"
)

type stringType struct{}

type numberType struct {
	integer bool
}

type boolType struct{}

type nullType struct{}

var builtinTypes = Types{
	"string":  stringType{},
	"number":  numberType{},
	"integer": numberType{integer: true},
	"boolean": boolType{},
	"null":    nullType{},
	"object":  objectType{},
	"array":   arrayType{},
}

// BuiltinType returns the compiler of a built-in type name, so a
// registered type can extend it.
func BuiltinType(name string) (Compilable, bool) {
	tp, ok := builtinTypes[name]
	return tp, ok
}

func (tp stringType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	v := &engine.StringValidator{}
	var err error
	if v.MinLength, err = convertAttrInt(node, "minLength"); err != nil {
		return nil, err
	}
	if v.MaxLength, err = convertAttrInt(node, "maxLength"); err != nil {
		return nil, err
	}

	if pattern, ok, err := convertAttrString(node, "pattern"); err != nil {
		return nil, err
	} else if ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, NewSchemaError(fmt.Sprintf("bad pattern %s", err), attrPaths(node.paths, "pattern"))
		}
		v.Pattern = re
	}

	if format, ok, err := convertAttrString(node, "format"); err != nil {
		return nil, err
	} else if ok {
		if checker, found := compiler.formatChecker(format); found {
			v.Format = format
			v.CheckFormat = checker
		} else {
			log.Warnf("unknown string format %s at %s, ignored", format, node.Path())
		}
	}
	return v, nil
}

func (tp numberType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	v := &engine.NumberValidator{Integer: tp.integer}
	var err error
	if v.Minimum, err = convertAttrFloat(node, "minimum"); err != nil {
		return nil, err
	}
	if v.Maximum, err = convertAttrFloat(node, "maximum"); err != nil {
		return nil, err
	}
	if v.ExclusiveMinimum, v.Minimum, err = exclusiveBound(node, "exclusiveMinimum", v.Minimum); err != nil {
		return nil, err
	}
	if v.ExclusiveMaximum, v.Maximum, err = exclusiveBound(node, "exclusiveMaximum", v.Maximum); err != nil {
		return nil, err
	}
	if v.MultipleOf, err = convertAttrFloat(node, "multipleOf"); err != nil {
		return nil, err
	}
	if v.MultipleOf != nil && *v.MultipleOf <= 0 {
		return nil, NewSchemaError("multipleOf must be greater than 0", attrPaths(node.paths, "multipleOf"))
	}
	return v, nil
}

// exclusiveBound reads exclusiveMinimum/exclusiveMaximum in both forms:
// a number (the exclusive bound itself), or a boolean turning the
// inclusive bound exclusive.
func exclusiveBound(node *Node, attrName string, inclusive *float64) (*float64, *float64, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return nil, inclusive, nil
	}
	if flag, ok := v.(bool); ok {
		if flag && inclusive != nil {
			return inclusive, nil, nil
		}
		return nil, inclusive, nil
	}
	bound, err := convertAttrFloat(node, attrName)
	if err != nil {
		return nil, nil, err
	}
	return bound, inclusive, nil
}

func (tp boolType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	return &engine.BoolValidator{}, nil
}

func (tp nullType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	return &engine.NullValidator{}, nil
}
