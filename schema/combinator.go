package schema

import (
	"fmt"

	"github.com/superisaac/jsonschemac/engine"
)

func (compiler *Compiler) compileBranches(node *Node, attrName string) ([]engine.Validator, bool, error) {
	choices, ok, err := convertAttrList(node, attrName, true)
	if err != nil || !ok {
		return nil, false, err
	}
	branches := make([]engine.Validator, 0, len(choices))
	for i, choice := range choices {
		newPaths := append(attrPaths(node.paths, attrName), fmt.Sprintf("[%d]", i))
		c, err := compiler.CompileNode(choice, newPaths...)
		if err != nil {
			return nil, false, err
		}
		branches = append(branches, c)
	}
	return branches, true, nil
}

// compileNot accepts a single schema or, as a compatibility form, a list
// of schemas that must all fail.
func (compiler *Compiler) compileNot(node *Node) ([]engine.Validator, bool, error) {
	child, ok := node.keywords["not"]
	if !ok {
		return nil, false, nil
	}
	switch child.(type) {
	case []any:
		return compiler.compileBranches(node, "not")
	case map[string]any, bool:
		c, err := compiler.CompileNode(child, attrPaths(node.paths, "not")...)
		if err != nil {
			return nil, false, err
		}
		return []engine.Validator{c}, true, nil
	}
	return nil, false, NewSchemaError("not must be a schema or a list of schemas", attrPaths(node.paths, "not"))
}

// compileCombinator ANDs together the node's own type keywords, every
// allOf branch and the anyOf, oneOf and not validators. Plain object shapes
// among them are merged into one.
func (compiler *Compiler) compileCombinator(node *Node) (engine.Validator, error) {
	var parts []engine.Validator

	keywords := node.without(append(combinatorKeywords, commonKeywords...)...)
	base, err := classify(keywords, node.paths...)
	if err != nil {
		return nil, err
	}
	if base.Kind != KindAny {
		v, err := compiler.dispatch(base)
		if err != nil {
			return nil, err
		}
		parts = append(parts, v)
	}

	allOf, ok, err := compiler.compileBranches(node, "allOf")
	if err != nil {
		return nil, err
	} else if ok {
		for _, branch := range allOf {
			if all, ok := branch.(*engine.AllValidator); ok {
				parts = append(parts, all.Branches...)
			} else {
				parts = append(parts, branch)
			}
		}
	}

	if anyOf, ok, err := compiler.compileBranches(node, "anyOf"); err != nil {
		return nil, err
	} else if ok {
		parts = append(parts, &engine.AnyOfValidator{Branches: anyOf})
	}

	if oneOf, ok, err := compiler.compileBranches(node, "oneOf"); err != nil {
		return nil, err
	} else if ok {
		parts = append(parts, &engine.OneOfValidator{Branches: oneOf})
	}

	if not, ok, err := compiler.compileNot(node); err != nil {
		return nil, err
	} else if ok {
		parts = append(parts, &engine.NotValidator{Branches: not})
	}

	parts = mergeObjectParts(parts)
	if len(parts) == 1 {
		return parts[0], nil
	}
	return &engine.AllValidator{Branches: parts}, nil
}

// mergeObjectParts replaces the plain object shapes in parts with their
// merge, placed where the first of them was.
func mergeObjectParts(parts []engine.Validator) []engine.Validator {
	var objs []*engine.ObjectValidator
	for _, part := range parts {
		if obj, ok := part.(*engine.ObjectValidator); ok {
			objs = append(objs, obj)
		}
	}
	if len(objs) < 2 {
		return parts
	}
	merged := engine.MergeObjects(objs...)
	result := make([]engine.Validator, 0, len(parts)-len(objs)+1)
	placed := false
	for _, part := range parts {
		if _, ok := part.(*engine.ObjectValidator); ok {
			if !placed {
				result = append(result, merged)
				placed = true
			}
			continue
		}
		result = append(result, part)
	}
	return result
}
