package engine

import (
	"math"
	"strconv"
	"unicode/utf8"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// type = any
func (self AnyValidator) Type() string {
	return "any"
}

func (self *AnyValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	return data, nil
}

// the false schema
func (self NeverValidator) Type() string {
	return "never"
}

func (self *NeverValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	return nil, scanner.NewError(KindUnknown, "is not allowed")
}

// type = "null"
func (self NullValidator) Type() string {
	return "null"
}

func (self *NullValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	if data != nil {
		return nil, scanner.NewError(KindNull, "must be null")
	}
	return nil, nil
}

// type = "boolean"
func (self BoolValidator) Type() string {
	return "boolean"
}

func (self *BoolValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	if _, ok := data.(bool); ok {
		return data, nil
	}
	return nil, scanner.NewError(KindBool, "must be a boolean")
}

// type = "number" or "integer"
func (self NumberValidator) Type() string {
	if self.Integer {
		return "integer"
	}
	return "number"
}

func (self *NumberValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	f, ok := toFloat(data)
	if !ok {
		if self.Integer {
			return nil, scanner.NewError(KindInteger, "must be an integer")
		}
		return nil, scanner.NewError(KindNumber, "must be a number")
	}
	if self.Integer && !isIntegral(f) {
		return nil, scanner.NewError(KindInteger, "must be an integer")
	}
	if errPos := self.checkRange(scanner, f); errPos != nil {
		return nil, errPos
	}
	return data, nil
}

func (self NumberValidator) checkRange(scanner *Scanner, v float64) *ValidationError {
	if self.Minimum != nil && v < *self.Minimum {
		return scanner.Errorf(KindNumberMin, "must be greater than or equal to %s", formatFloat(*self.Minimum))
	}
	if self.ExclusiveMinimum != nil && v <= *self.ExclusiveMinimum {
		return scanner.Errorf(KindNumberGt, "must be greater than %s", formatFloat(*self.ExclusiveMinimum))
	}
	if self.Maximum != nil && v > *self.Maximum {
		return scanner.Errorf(KindNumberMax, "must be less than or equal to %s", formatFloat(*self.Maximum))
	}
	if self.ExclusiveMaximum != nil && v >= *self.ExclusiveMaximum {
		return scanner.Errorf(KindNumberLt, "must be less than %s", formatFloat(*self.ExclusiveMaximum))
	}
	if self.MultipleOf != nil {
		q := v / *self.MultipleOf
		if math.Abs(q-math.Round(q)) > 1e-9 {
			return scanner.Errorf(KindMultiple, "must be a multiple of %s", formatFloat(*self.MultipleOf))
		}
	}
	return nil
}

// type = "string"
func (self StringValidator) Type() string {
	return "string"
}

func (self *StringValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	str, ok := data.(string)
	if !ok {
		return nil, scanner.NewError(KindString, "must be a string")
	}
	length := utf8.RuneCountInString(str)
	if self.MinLength != nil && length < *self.MinLength {
		return nil, scanner.Errorf(KindStringMin, "length must be at least %d characters long", *self.MinLength)
	}
	if self.MaxLength != nil && length > *self.MaxLength {
		return nil, scanner.Errorf(KindStringMax, "length must be less than or equal to %d characters long", *self.MaxLength)
	}
	if self.Pattern != nil && !self.Pattern.MatchString(str) {
		return nil, scanner.Errorf(KindPattern, "with value \"%s\" fails to match the required pattern: %s", str, self.Pattern.String())
	}
	if self.CheckFormat != nil && !self.CheckFormat(str) {
		return nil, scanner.Errorf(KindFormat, "must be a valid %s", self.Format)
	}
	return str, nil
}
