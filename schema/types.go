package schema

import (
	"github.com/superisaac/jsonschemac/engine"
)

// Schema build error
type SchemaError struct {
	info  string
	paths []string
}

// Fix string map issue from yaml format
type NonStringMap struct {
	paths []string
}

type NodeKind int

const (
	KindBool NodeKind = iota
	KindAny
	KindCombinator
	KindTypeUnion
	KindTyped
	KindObject
	KindArray
)

// Node is one classified schema document node. The keyword map belongs to
// the document and is only read.
type Node struct {
	Kind        NodeKind
	Type        string
	Types       []string
	Bool        bool
	Title       string
	Description string
	keywords    map[string]any
	paths       []string
}

// Compilable turns a node of a given type name into a validator. Built-in
// types implement it, and so can caller types registered in Options.Types.
type Compilable interface {
	Compile(compiler *Compiler, node *Node) (engine.Validator, error)
}

type CompilableFunc func(compiler *Compiler, node *Node) (engine.Validator, error)

type Types map[string]Compilable

type Options struct {
	// Types are consulted before the built-in types.
	Types Types
	// Formats add or override string format checkers.
	Formats map[string]engine.FormatChecker
	// StrictObjects rejects unknown keys when additionalProperties is
	// absent.
	StrictObjects bool
}

type Compiler struct {
	options Options
}

// Validator is a compiled schema.
type Validator struct {
	root engine.Validator
}
