package schema

import (
	"encoding/json"
	"fmt"
	"math"
)

func stringInList(a string, candidates ...string) bool {
	for _, ca := range candidates {
		if ca == a {
			return true
		}
	}
	return false
}

func attrPaths(paths []string, attrName string) []string {
	return subPaths(paths, "."+attrName)
}

func subPaths(paths []string, elem string) []string {
	newPaths := make([]string, 0, len(paths)+1)
	newPaths = append(newPaths, paths...)
	return append(newPaths, elem)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// convertAttrInt reads a non-negative integer keyword, nil when absent.
func convertAttrInt(node *Node, attrName string) (*int, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok || f < 0 || math.Trunc(f) != f {
		return nil, NewSchemaError(fmt.Sprintf("%s must be a non-negative integer", attrName), attrPaths(node.paths, attrName))
	}
	intv := math.MaxInt
	if f < float64(math.MaxInt) {
		intv = int(f)
	}
	return &intv, nil
}

func convertAttrFloat(node *Node, attrName string) (*float64, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, NewSchemaError(fmt.Sprintf("%s must be a number", attrName), attrPaths(node.paths, attrName))
	}
	return &f, nil
}

func convertAttrBool(node *Node, attrName string) (bool, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return false, nil
	}
	bv, ok := v.(bool)
	if !ok {
		return false, NewSchemaError(fmt.Sprintf("%s must be a boolean", attrName), attrPaths(node.paths, attrName))
	}
	return bv, nil
}

func convertAttrString(node *Node, attrName string) (string, bool, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return "", false, nil
	}
	sv, ok := v.(string)
	if !ok {
		return "", false, NewSchemaError(fmt.Sprintf("%s must be a string", attrName), attrPaths(node.paths, attrName))
	}
	return sv, true, nil
}

func convertAttrMap(node *Node, attrName string) (map[string]any, bool, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return nil, false, nil
	}
	mv, ok := v.(map[string]any)
	if !ok {
		return nil, false, NewSchemaError(fmt.Sprintf("%s must be an object", attrName), attrPaths(node.paths, attrName))
	}
	return mv, true, nil
}

// convertAttrList reads a sequence keyword, nonEmpty rejects [].
func convertAttrList(node *Node, attrName string, nonEmpty bool) ([]any, bool, error) {
	v, ok := node.keywords[attrName]
	if !ok {
		return nil, false, nil
	}
	aList, ok := v.([]any)
	if !ok {
		return nil, false, NewSchemaError(fmt.Sprintf("%s must be a list", attrName), attrPaths(node.paths, attrName))
	}
	if nonEmpty && len(aList) == 0 {
		return nil, false, NewSchemaError(fmt.Sprintf("%s must not be empty", attrName), attrPaths(node.paths, attrName))
	}
	return aList, true, nil
}

func convertAttrListOfString(node *Node, attrName string) ([]string, error) {
	aList, ok, err := convertAttrList(node, attrName, false)
	if err != nil || !ok {
		return nil, err
	}
	arr := make([]string, 0, len(aList))
	for _, item := range aList {
		strItem, ok := item.(string)
		if !ok {
			return nil, NewSchemaError(fmt.Sprintf("%s must be a list of strings", attrName), attrPaths(node.paths, attrName))
		}
		arr = append(arr, strItem)
	}
	return arr, nil
}
