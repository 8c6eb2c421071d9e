package engine

import (
	"sort"
)

// type = "object"
func (self ObjectValidator) Type() string {
	return "object"
}

func (self ObjectValidator) hasKey(name string) bool {
	for _, key := range self.Keys {
		if key.Name == name {
			return true
		}
	}
	return false
}

func (self *ObjectValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	obj, ok := data.(map[string]any)
	if !ok {
		if self.Implicit {
			return data, nil
		}
		return nil, scanner.NewError(KindObject, "must be of type object")
	}
	if self.MinProperties != nil && len(obj) < *self.MinProperties {
		return nil, scanner.Errorf(KindObjectMin, "must have at least %d keys", *self.MinProperties)
	}
	if self.MaxProperties != nil && len(obj) > *self.MaxProperties {
		return nil, scanner.Errorf(KindObjectMax, "must have less than or equal to %d keys", *self.MaxProperties)
	}

	out := make(map[string]any, len(obj))
	for _, key := range self.Keys {
		v, found := obj[key.Name]
		if !found {
			v = Undefined
		}
		nv, verr := scanner.Scan(key.Validator, "."+key.Name, v)
		if verr != nil {
			return nil, verr
		}
		if IsUndefined(nv) {
			if key.Required {
				// defaults have had their chance, the key is missing
				scanner.pushPath("." + key.Name)
				verr = scanner.NewError(KindRequired, "is required")
				scanner.popPath("." + key.Name)
				return nil, verr
			}
			continue
		}
		out[key.Name] = nv
	}

	names := make([]string, 0, len(obj))
	for name := range obj {
		if !self.hasKey(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		switch self.Unknown {
		case UnknownForbid:
			scanner.pushPath("." + name)
			verr := scanner.NewError(KindObjectKey, "is not allowed")
			scanner.popPath("." + name)
			return nil, verr
		case UnknownValidate:
			nv, verr := scanner.Scan(self.UnknownSchema, "."+name, obj[name])
			if verr != nil {
				return nil, verr
			}
			out[name] = nv
		default:
			out[name] = obj[name]
		}
	}
	return out, nil
}

// MergeObjects combines object shapes that must all hold into one shape:
// keys are unioned, a key present in several shapes is checked by each of
// them, and it is required if any shape requires it. Unknown keys are
// those outside the union, under the most restrictive policy.
func MergeObjects(objs ...*ObjectValidator) *ObjectValidator {
	merged := &ObjectValidator{Implicit: true}
	index := map[string]int{}
	var unknownSchemas []Validator
	forbid := false
	for _, obj := range objs {
		merged.Implicit = merged.Implicit && obj.Implicit
		for _, key := range obj.Keys {
			if i, found := index[key.Name]; found {
				prev := merged.Keys[i]
				merged.Keys[i] = Key{
					Name:      key.Name,
					Validator: allOf(prev.Validator, key.Validator),
					Required:  prev.Required || key.Required,
				}
				continue
			}
			index[key.Name] = len(merged.Keys)
			merged.Keys = append(merged.Keys, key)
		}
		switch obj.Unknown {
		case UnknownForbid:
			forbid = true
		case UnknownValidate:
			unknownSchemas = append(unknownSchemas, obj.UnknownSchema)
		}
		merged.MinProperties = maxIntPtr(merged.MinProperties, obj.MinProperties)
		merged.MaxProperties = minIntPtr(merged.MaxProperties, obj.MaxProperties)
	}
	sort.SliceStable(merged.Keys, func(i, j int) bool {
		return merged.Keys[i].Name < merged.Keys[j].Name
	})
	if forbid {
		merged.Unknown = UnknownForbid
	} else if len(unknownSchemas) > 0 {
		merged.Unknown = UnknownValidate
		merged.UnknownSchema = allOf(unknownSchemas...)
	}
	return merged
}

func allOf(validators ...Validator) Validator {
	if len(validators) == 1 {
		return validators[0]
	}
	var branches []Validator
	for _, v := range validators {
		if all, ok := v.(*AllValidator); ok {
			branches = append(branches, all.Branches...)
		} else {
			branches = append(branches, v)
		}
	}
	return &AllValidator{Branches: branches}
}

func maxIntPtr(a, b *int) *int {
	if a == nil {
		return b
	}
	if b == nil || *a >= *b {
		return a
	}
	return b
}

func minIntPtr(a, b *int) *int {
	if a == nil {
		return b
	}
	if b == nil || *a <= *b {
		return a
	}
	return b
}
