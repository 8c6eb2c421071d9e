package engine

// allOf: every branch must accept, each branch sees the previous output.
// Branches that only compare values see the caller's value instead.
func (self AllValidator) Type() string {
	return "allOf"
}

func (self *AllValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	cur := data
	for _, branch := range self.Branches {
		if IsPassThrough(branch) && !IsUndefined(data) {
			if _, verr := scanner.Scan(branch, "", data); verr != nil {
				return nil, verr
			}
			continue
		}
		v, verr := scanner.Scan(branch, "", cur)
		if verr != nil {
			return nil, verr
		}
		cur = v
	}
	return cur, nil
}

func (self AllValidator) DefaultValue() (any, bool) {
	return firstDefault(self.Branches)
}

func firstDefault(branches []Validator) (any, bool) {
	for _, branch := range branches {
		if v, ok := innerDefault(branch); ok {
			return v, true
		}
	}
	return nil, false
}

// IsPassThrough reports whether v accepts or rejects a value without
// producing a different one.
func IsPassThrough(v Validator) bool {
	switch tv := v.(type) {
	case *EnumValidator, *ConstValidator, *NotValidator:
		return true
	case *DefaultValidator:
		return IsPassThrough(tv.Inner)
	case *AllValidator:
		for _, branch := range tv.Branches {
			if !IsPassThrough(branch) {
				return false
			}
		}
		return true
	}
	return false
}

// anyOf: the first accepting branch wins
func (self AnyOfValidator) Type() string {
	return "anyOf"
}

func (self *AnyOfValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	var details []*ValidationError
	for _, branch := range self.Branches {
		v, verr := scanner.Scan(branch, "", data)
		if verr == nil {
			return v, nil
		}
		details = append(details, verr)
	}
	verr := scanner.NewError(KindNoMatch, "does not match any of the allowed types")
	verr.Details = details
	return nil, verr
}

func (self AnyOfValidator) DefaultValue() (any, bool) {
	return firstDefault(self.Branches)
}

// oneOf: exactly one branch may accept
func (self OneOfValidator) Type() string {
	return "oneOf"
}

func (self *OneOfValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	var details []*ValidationError
	var matched any
	matches := 0
	for _, branch := range self.Branches {
		v, verr := scanner.Scan(branch, "", data)
		if verr != nil {
			details = append(details, verr)
			continue
		}
		matches++
		if matches == 1 {
			matched = v
		}
	}
	switch matches {
	case 1:
		return matched, nil
	case 0:
		verr := scanner.NewError(KindNoMatch, "does not match any of the allowed types")
		verr.Details = details
		return nil, verr
	default:
		return nil, scanner.NewError(KindAmbiguous, "matches more than one allowed type")
	}
}

func (self OneOfValidator) DefaultValue() (any, bool) {
	return firstDefault(self.Branches)
}

// not: every listed branch must reject, the value passes through unchanged
func (self NotValidator) Type() string {
	return "not"
}

func (self *NotValidator) Scan(scanner *Scanner, data any) (any, *ValidationError) {
	for _, branch := range self.Branches {
		if _, verr := scanner.Scan(branch, "", data); verr == nil {
			return nil, scanner.NewError(KindForbiddenHit, "matches a forbidden schema")
		}
	}
	return data, nil
}
