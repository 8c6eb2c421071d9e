package engine

import (
	"fmt"
)

// type = "array"
func (self ArrayValidator) Type() string {
	if self.Tuple != nil {
		return "tuple"
	}
	return "array"
}

func (self *ArrayValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	items, ok := data.([]any)
	if !ok {
		if self.Implicit {
			return data, nil
		}
		return nil, scanner.NewError(KindArray, "must be an array")
	}

	if self.MinItems != nil && len(items) < *self.MinItems {
		return nil, scanner.Errorf(KindArrayMin, "must contain at least %d items", *self.MinItems)
	}
	if self.MaxItems != nil && len(items) > *self.MaxItems {
		return nil, scanner.Errorf(KindArrayMax, "must contain less than or equal to %d items", *self.MaxItems)
	}
	if self.Tuple != nil && self.Additional == UnknownForbid && len(items) > len(self.Tuple) {
		return nil, scanner.Errorf(KindArrayExtra, "must contain at most %d items", len(self.Tuple))
	}

	out := make([]any, len(items))
	for i, item := range items {
		pos := fmt.Sprintf("[%d]", i)
		schema := self.itemSchema(i)
		if schema == nil {
			out[i] = item
			continue
		}
		v, verr := scanner.Scan(schema, pos, item)
		if verr != nil {
			return nil, verr
		}
		out[i] = v
	}

	if self.UniqueItems {
		for i := 1; i < len(out); i++ {
			for j := 0; j < i; j++ {
				if JSONEqual(out[i], out[j]) {
					pos := fmt.Sprintf("[%d]", i)
					scanner.pushPath(pos)
					verr := scanner.NewError(KindArrayUnique, "contains a duplicate value")
					scanner.popPath(pos)
					return nil, verr
				}
			}
		}
	}
	return out, nil
}

// itemSchema returns the validator for position i, nil when the position
// passes unchecked.
func (self ArrayValidator) itemSchema(i int) Validator {
	if self.Tuple == nil {
		return self.Items
	}
	if i < len(self.Tuple) {
		return self.Tuple[i]
	}
	if self.Additional == UnknownValidate {
		return self.AdditionalSchema
	}
	return nil
}
