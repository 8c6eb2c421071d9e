package schema

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsonschemac/engine"
	yaml "gopkg.in/yaml.v3"
)

var combinatorKeywords = []string{"allOf", "anyOf", "oneOf", "not"}

var commonKeywords = []string{"default", "enum", "const"}

var objectKeywords = []string{"properties", "required", "additionalProperties", "minProperties", "maxProperties"}

var arrayKeywords = []string{"items", "additionalItems", "minItems", "maxItems", "uniqueItems"}

func NewNonStringMap(paths ...string) *NonStringMap {
	return &NonStringMap{paths: paths}
}

func (err NonStringMap) Error() string {
	return fmt.Sprintf("not string key %s", strings.Join(err.paths, ""))
}

// Schema build error
func (err SchemaError) Error() string {
	return fmt.Sprintf("SchemaError %s, paths: %s", err.info, strings.Join(err.paths, ""))
}

func (err SchemaError) Info() string {
	return err.info
}

func (err SchemaError) Path() string {
	return strings.Join(err.paths, "")
}

func NewSchemaError(info string, paths []string) *SchemaError {
	return &SchemaError{info: info, paths: paths}
}

// Compiler
func NewCompiler(opts *Options) *Compiler {
	compiler := &Compiler{}
	if opts != nil {
		compiler.options = *opts
	}
	return compiler
}

func (compiler *Compiler) Options() Options {
	return compiler.options
}

func (compiler *Compiler) CompileBytes(data []byte) (*Validator, error) {
	parsed, err := simplejson.NewFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "simplejson.NewFromReader")
	}
	return compiler.Compile(parsed.Interface())
}

func (compiler *Compiler) Compile(data any) (*Validator, error) {
	root, err := compiler.CompileNode(data)
	if err != nil {
		return nil, err
	}
	return &Validator{root: root}, nil
}

func FixYamlMaps(src any, paths ...string) (any, error) {
	if anyMap, ok := src.(map[any]any); ok {
		strMap := make(map[string]any)
		for k, v := range anyMap {
			if sk, ok := k.(string); ok {
				newPaths := subPaths(paths, fmt.Sprintf(".%s", k))
				newV, err := FixYamlMaps(v, newPaths...)
				if err != nil {
					return nil, err
				}
				strMap[sk] = newV
			} else {
				newPaths := subPaths(paths, fmt.Sprintf(".%v", k))
				return nil, NewNonStringMap(newPaths...)
			}
		}
		return strMap, nil
	} else if strMap, ok := src.(map[string]any); ok {
		fixed := make(map[string]any, len(strMap))
		for k, v := range strMap {
			newPaths := subPaths(paths, fmt.Sprintf(".%s", k))
			newV, err := FixYamlMaps(v, newPaths...)
			if err != nil {
				return nil, err
			}
			fixed[k] = newV
		}
		return fixed, nil
	} else if anyList, ok := src.([]any); ok {
		list1 := make([]any, 0)
		for i, elem := range anyList {
			newPaths := subPaths(paths, fmt.Sprintf("[%d]", i))
			newElem, err := FixYamlMaps(elem, newPaths...)
			if err != nil {
				return nil, err
			}
			list1 = append(list1, newElem)
		}
		return list1, nil
	} else {
		return src, nil
	}
}

func (compiler *Compiler) CompileYAML(data []byte) (*Validator, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "yaml.Unmarshal")
	}
	fixed, err := FixYamlMaps(doc)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(fixed)
}

// classify decides once which variant a document node is.
func classify(data any, paths ...string) (*Node, error) {
	if bv, ok := data.(bool); ok {
		return &Node{Kind: KindBool, Bool: bv, paths: paths}, nil
	}
	keywords, ok := data.(map[string]any)
	if !ok {
		return nil, NewSchemaError("schema is not an object", paths)
	}
	node := &Node{keywords: keywords, paths: paths}

	if title, ok := keywords["title"].(string); ok {
		node.Title = title
	}
	if desc, ok := keywords["description"].(string); ok {
		node.Description = desc
	}

	if tp, ok := keywords["type"]; ok {
		switch tv := tp.(type) {
		case string:
			node.Type = tv
		case []any:
			for _, elem := range tv {
				name, ok := elem.(string)
				if !ok {
					return nil, NewSchemaError("type must be a string or a list of strings", attrPaths(paths, "type"))
				}
				node.Types = append(node.Types, name)
			}
			if len(node.Types) == 0 {
				return nil, NewSchemaError("type list is empty", attrPaths(paths, "type"))
			}
		default:
			return nil, NewSchemaError("type must be a string or a list of strings", attrPaths(paths, "type"))
		}
	}

	switch {
	case node.hasAny(combinatorKeywords...):
		node.Kind = KindCombinator
	case len(node.Types) == 1:
		node.Type = node.Types[0]
		node.Types = nil
		node.Kind = node.kindOfType()
	case len(node.Types) > 1:
		node.Kind = KindTypeUnion
	case node.Type != "":
		node.Kind = node.kindOfType()
	case node.hasAny(objectKeywords...):
		node.Kind = KindObject
	case node.hasAny(arrayKeywords...):
		node.Kind = KindArray
	default:
		node.Kind = KindAny
	}
	return node, nil
}

func (node Node) kindOfType() NodeKind {
	switch node.Type {
	case "object":
		return KindObject
	case "array":
		return KindArray
	}
	return KindTyped
}

// CompileNode compiles a nested document node, used by Compilable
// implementations to recurse.
func (compiler *Compiler) CompileNode(data any, paths ...string) (engine.Validator, error) {
	node, err := classify(data, paths...)
	if err != nil {
		return nil, err
	}
	v, err := compiler.dispatch(node)
	if err != nil {
		return nil, err
	}
	return compiler.wrapCommon(v, node)
}

func (compiler *Compiler) dispatch(node *Node) (engine.Validator, error) {
	if node.Kind == KindBool {
		if node.Bool {
			return &engine.AnyValidator{}, nil
		}
		return &engine.NeverValidator{}, nil
	}

	// with combinators the registry type is the base AND branch, see
	// compileCombinator
	if node.Type != "" && node.Kind != KindCombinator {
		if tp, ok := compiler.options.Types[node.Type]; ok {
			log.Debugf("type %s at %s resolved by registry", node.Type, node.Path())
			return tp.Compile(compiler, node)
		}
	}

	switch node.Kind {
	case KindCombinator:
		return compiler.compileCombinator(node)
	case KindTypeUnion:
		return compiler.compileTypeUnion(node)
	case KindAny:
		return &engine.AnyValidator{}, nil
	case KindObject:
		return objectType{}.Compile(compiler, node)
	case KindArray:
		return arrayType{}.Compile(compiler, node)
	}

	tp, ok := builtinTypes[node.Type]
	if !ok {
		return nil, NewSchemaError(fmt.Sprintf("unknown type %s", node.Type), attrPaths(node.paths, "type"))
	}
	return tp.Compile(compiler, node)
}

// compileTypeUnion compiles `type: [a, b]` as anyOf over one node per type
// sharing the remaining keywords.
func (compiler *Compiler) compileTypeUnion(node *Node) (engine.Validator, error) {
	branches := make([]engine.Validator, 0, len(node.Types))
	for i, name := range node.Types {
		keywords := node.without(commonKeywords...)
		keywords["type"] = name
		branch, err := compiler.CompileNode(keywords, append(attrPaths(node.paths, "type"), fmt.Sprintf("[%d]", i))...)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return &engine.AnyOfValidator{Branches: branches}, nil
}

// wrapCommon applies enum, const and default, which every node may carry.
func (compiler *Compiler) wrapCommon(v engine.Validator, node *Node) (engine.Validator, error) {
	if node.Kind == KindBool {
		return v, nil
	}
	if values, ok, err := convertAttrList(node, "enum", true); err != nil {
		return nil, err
	} else if ok {
		v = &engine.EnumValidator{Values: values, Inner: v}
	}
	if c, ok := node.keywords["const"]; ok {
		v = &engine.AllValidator{Branches: []engine.Validator{v, &engine.ConstValidator{Value: c}}}
	}
	if d, ok := node.keywords["default"]; ok {
		v = &engine.DefaultValidator{Value: engine.DeepCopy(d), Inner: v}
	}
	return v, nil
}

// Node accessors
func (node Node) Path() string {
	return strings.Join(node.paths, "")
}

func (node Node) Paths() []string {
	return node.paths
}

func (node Node) Get(keyword string) (any, bool) {
	v, ok := node.keywords[keyword]
	return v, ok
}

func (node Node) Has(keyword string) bool {
	_, ok := node.keywords[keyword]
	return ok
}

func (node Node) hasAny(keywords ...string) bool {
	for _, kw := range keywords {
		if node.Has(kw) {
			return true
		}
	}
	return false
}

// Keywords returns the keyword names of the node, sorted.
func (node Node) Keywords() []string {
	names := make([]string, 0, len(node.keywords))
	for name := range node.keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// without copies the keyword map minus the named keywords.
func (node Node) without(keywords ...string) map[string]any {
	copied := make(map[string]any, len(node.keywords))
	for k, v := range node.keywords {
		if !stringInList(k, keywords...) {
			copied[k] = v
		}
	}
	return copied
}
