package schema

import (
	"github.com/superisaac/jsonschemac/engine"
)

func (fn CompilableFunc) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	return fn(compiler, node)
}

type precompiled struct {
	validator engine.Validator
}

func (tp precompiled) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	return tp.validator, nil
}

// Use registers an already compiled schema as a type.
func Use(v *Validator) Compilable {
	return precompiled{validator: v.root}
}

// UseEngine registers a hand built engine validator as a type.
func UseEngine(v engine.Validator) Compilable {
	return precompiled{validator: v}
}
