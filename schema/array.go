package schema

import (
	"fmt"

	"github.com/superisaac/jsonschemac/engine"
)

type arrayType struct{}

func (tp arrayType) Compile(compiler *Compiler, node *Node) (engine.Validator, error) {
	schema := &engine.ArrayValidator{Implicit: node.Type == ""}
	var err error

	if items, ok := node.keywords["items"]; ok {
		if itemsTuple, ok := items.([]any); ok {
			// build tuple
			schema.Tuple = make([]engine.Validator, 0, len(itemsTuple))
			for i, item := range itemsTuple {
				newPaths := append(attrPaths(node.paths, "items"), fmt.Sprintf("[%d]", i))
				child, err := compiler.CompileNode(item, newPaths...)
				if err != nil {
					return nil, err
				}
				schema.Tuple = append(schema.Tuple, child)
			}
			if err := compiler.compileAdditionalItems(schema, node); err != nil {
				return nil, err
			}
		} else {
			// build list
			schema.Items, err = compiler.CompileNode(items, attrPaths(node.paths, "items")...)
			if err != nil {
				return nil, err
			}
		}
	}

	if schema.MinItems, err = convertAttrInt(node, "minItems"); err != nil {
		return nil, err
	}
	if schema.MaxItems, err = convertAttrInt(node, "maxItems"); err != nil {
		return nil, err
	}
	if schema.UniqueItems, err = convertAttrBool(node, "uniqueItems"); err != nil {
		return nil, err
	}
	return schema, nil
}

func (compiler *Compiler) compileAdditionalItems(schema *engine.ArrayValidator, node *Node) error {
	additional, ok := node.keywords["additionalItems"]
	if !ok {
		schema.Additional = engine.UnknownAllow
		return nil
	}
	switch av := additional.(type) {
	case bool:
		if av {
			schema.Additional = engine.UnknownAllow
		} else {
			schema.Additional = engine.UnknownForbid
		}
	case map[string]any:
		addSchema, err := compiler.CompileNode(av, attrPaths(node.paths, "additionalItems")...)
		if err != nil {
			return err
		}
		schema.Additional = engine.UnknownValidate
		schema.AdditionalSchema = addSchema
	default:
		return NewSchemaError("additionalItems must be a boolean or a schema", attrPaths(node.paths, "additionalItems"))
	}
	return nil
}
