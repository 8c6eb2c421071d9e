package engine

import (
	"encoding/json"
	"strings"
)

// enum: an allow-list, a listed value is accepted without consulting Inner
func (self EnumValidator) Type() string {
	if self.Inner != nil {
		return self.Inner.Type()
	}
	return "enum"
}

func (self *EnumValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	for _, allowed := range self.Values {
		if JSONEqual(allowed, data) {
			return data, nil
		}
	}
	return nil, scanner.Errorf(KindOnly, "must be one of [%s]", self.describe())
}

func (self EnumValidator) describe() string {
	parts := make([]string, 0, len(self.Values))
	for _, v := range self.Values {
		parts = append(parts, describeValue(v))
	}
	return strings.Join(parts, ", ")
}

func (self EnumValidator) DefaultValue() (any, bool) {
	return innerDefault(self.Inner)
}

func describeValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(data)
}

// const
func (self ConstValidator) Type() string {
	return "const"
}

func (self *ConstValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	if JSONEqual(self.Value, data) {
		return data, nil
	}
	return nil, scanner.Errorf(KindOnly, "must be [%s]", describeValue(self.Value))
}

// default: resolves absent values, present values go to Inner
func (self DefaultValidator) Type() string {
	return self.Inner.Type()
}

func (self *DefaultValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	return self.Inner.Scan(scanner, data)
}

func (self DefaultValidator) DefaultValue() (any, bool) {
	return DeepCopy(self.Value), true
}

func innerDefault(v Validator) (any, bool) {
	if d, ok := v.(Defaulter); ok {
		return d.DefaultValue()
	}
	return nil, false
}
