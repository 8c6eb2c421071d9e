package schema

import (
	"fmt"
	"sort"

	"github.com/superisaac/jsonschemac/engine"
)

type objectType struct{}

func (tp objectType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	schema := &engine.ObjectValidator{Implicit: node.Type == ""}

	propNodes, _, err := convertAttrMap(node, "properties")
	if err != nil {
		return nil, err
	}
	requireList, err := convertAttrListOfString(node, "required")
	if err != nil {
		return nil, err
	}
	requires := make(map[string]bool)
	for _, name := range requireList {
		requires[name] = true
	}

	names := make([]string, 0, len(propNodes)+len(requires))
	for name := range propNodes {
		names = append(names, name)
	}
	for name := range requires {
		if _, found := propNodes[name]; !found {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var child engine.Validator = &engine.AnyValidator{}
		if propNode, found := propNodes[name]; found {
			newPaths := append(attrPaths(node.paths, "properties"), fmt.Sprintf(".%s", name))
			child, err = compiler.CompileNode(propNode, newPaths...)
			if err != nil {
				return nil, err
			}
		}
		schema.Keys = append(schema.Keys, engine.Key{
			Name:      name,
			Validator: child,
			Required:  requires[name],
		})
	}

	if err := compiler.compileAdditionalProperties(schema, node); err != nil {
		return nil, err
	}

	if schema.MinProperties, err = convertAttrInt(node, "minProperties"); err != nil {
		return nil, err
	}
	if schema.MaxProperties, err = convertAttrInt(node, "maxProperties"); err != nil {
		return nil, err
	}
	return schema, nil
}

// compileAdditionalProperties sets the unknown key policy from the literal
// value of additionalProperties.
func (compiler *Compiler) compileAdditionalProperties(schema *engine.ObjectValidator, node *Node) error {
	additional, ok := node.keywords["additionalProperties"]
	if !ok {
		if compiler.options.StrictObjects {
			schema.Unknown = engine.UnknownForbid
		} else {
			schema.Unknown = engine.UnknownAllow
		}
		return nil
	}
	switch av := additional.(type) {
	case bool:
		if av {
			schema.Unknown = engine.UnknownAllow
		} else {
			schema.Unknown = engine.UnknownForbid
		}
	case map[string]any:
		addSchema, err := compiler.CompileNode(av, attrPaths(node.paths, "additionalProperties")...)
		if err != nil {
			return err
		}
		schema.Unknown = engine.UnknownValidate
		schema.UnknownSchema = addSchema
	default:
		return NewSchemaError("additionalProperties must be a boolean or a schema", attrPaths(node.paths, "additionalProperties"))
	}
	return nil
}
