package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestScalarValidators(t *testing.T) {
	assert := assert.New(t)

	num := &NumberValidator{Minimum: floatPtr(-1980), ExclusiveMaximum: floatPtr(6000)}
	res := Validate(num, json.Number("6.3"))
	assert.True(res.Ok())
	assert.Equal(json.Number("6.3"), res.Value)

	res = Validate(num, 6000)
	assert.NotNil(res.Error)
	assert.Equal(KindNumberLt, res.Error.Kind)
	assert.Equal("\"value\" must be less than 6000", res.Error.Error())

	res = Validate(num, -8888.99)
	assert.NotNil(res.Error)
	assert.Equal("must be greater than or equal to -1980", res.Error.Hint())

	res = Validate(num, "a string")
	assert.NotNil(res.Error)
	assert.Equal(KindNumber, res.Error.Kind)
	assert.Equal("", res.Error.Path())

	integer := &NumberValidator{Integer: true}
	assert.True(Validate(integer, json.Number("899")).Ok())
	assert.True(Validate(integer, 5.0).Ok())
	res = Validate(integer, json.Number("6.3"))
	assert.Equal(KindInteger, res.Error.Kind)

	multiple := &NumberValidator{MultipleOf: floatPtr(0.5)}
	assert.True(Validate(multiple, 1.5).Ok())
	assert.Equal(KindMultiple, Validate(multiple, 1.2).Error.Kind)

	str := &StringValidator{MinLength: intPtr(1), MaxLength: intPtr(3)}
	assert.True(Validate(str, "héé").Ok())
	res = Validate(str, "abcd")
	assert.Equal("\"value\" length must be less than or equal to 3 characters long", res.Error.Error())
	res = Validate(str, "")
	assert.Equal(KindStringMin, res.Error.Kind)

	assert.True(Validate(&BoolValidator{}, false).Ok())
	assert.Equal(KindBool, Validate(&BoolValidator{}, "true").Error.Kind)
	assert.True(Validate(&NullValidator{}, nil).Ok())
	assert.Equal(KindNull, Validate(&NullValidator{}, 0).Error.Kind)

	assert.True(Validate(&AnyValidator{}, map[string]any{}).Ok())
	assert.Equal(KindUnknown, Validate(&NeverValidator{}, 1).Error.Kind)
}

func TestUndefinedShortCircuits(t *testing.T) {
	assert := assert.New(t)

	res := Validate(&NeverValidator{}, Undefined)
	assert.True(res.Ok())
	assert.True(IsUndefined(res.Value))

	oneOf := &OneOfValidator{Branches: []Validator{&StringValidator{}, &AnyValidator{}}}
	res = Validate(oneOf, Undefined)
	assert.True(res.Ok())
	assert.True(IsUndefined(res.Value))

	def := &DefaultValidator{Value: "en-US", Inner: &StringValidator{}}
	res = Validate(def, Undefined)
	assert.True(res.Ok())
	assert.Equal("en-US", res.Value)
}

func TestObjectValidator(t *testing.T) {
	assert := assert.New(t)

	obj := &ObjectValidator{
		Keys: []Key{
			{Name: "file", Validator: &StringValidator{}, Required: true},
			{Name: "locale", Validator: &DefaultValidator{Value: "en-US", Inner: &StringValidator{}}},
		},
	}
	res := Validate(obj, map[string]any{"file": "data", "consumes": "application/json"})
	assert.True(res.Ok())
	assert.Equal(map[string]any{"file": "data", "consumes": "application/json", "locale": "en-US"}, res.Value)

	res = Validate(obj, map[string]any{"consumes": "application/json"})
	assert.NotNil(res.Error)
	assert.Equal(KindRequired, res.Error.Kind)
	assert.Equal(".file", res.Error.Path())
	assert.Equal("\"file\" is required", res.Error.Error())

	obj.Unknown = UnknownForbid
	res = Validate(obj, map[string]any{"file": "data", "consumes": "application/json"})
	assert.NotNil(res.Error)
	assert.Equal(KindObjectKey, res.Error.Kind)
	assert.Equal("\"consumes\" is not allowed", res.Error.Error())

	obj.Unknown = UnknownValidate
	obj.UnknownSchema = &StringValidator{}
	res = Validate(obj, map[string]any{"file": "data", "consumes": 5})
	assert.NotNil(res.Error)
	assert.Equal("\"consumes\" must be a string", res.Error.Error())

	res = Validate(obj, []any{})
	assert.Equal(KindObject, res.Error.Kind)

	// the input is never modified
	input := map[string]any{"file": "data"}
	res = Validate(obj, input)
	assert.True(res.Ok())
	assert.Equal(map[string]any{"file": "data"}, input)
}

func TestMergeObjects(t *testing.T) {
	assert := assert.New(t)

	a := &ObjectValidator{
		Keys:    []Key{{Name: "a", Validator: &StringValidator{}}},
		Unknown: UnknownForbid,
	}
	b := &ObjectValidator{
		Keys: []Key{
			{Name: "b", Validator: &NumberValidator{}, Required: true},
			{Name: "a", Validator: &StringValidator{MaxLength: intPtr(2)}},
		},
		MinProperties: intPtr(1),
	}
	merged := MergeObjects(a, b)
	assert.Equal(2, len(merged.Keys))
	assert.Equal("a", merged.Keys[0].Name)
	assert.Equal("b", merged.Keys[1].Name)
	assert.True(merged.Keys[1].Required)
	assert.Equal(UnknownForbid, merged.Unknown)
	assert.Equal(1, *merged.MinProperties)

	assert.True(Validate(merged, map[string]any{"a": "xy", "b": 1}).Ok())

	res := Validate(merged, map[string]any{"a": "xyz", "b": 1})
	assert.Equal(KindStringMax, res.Error.Kind)

	res = Validate(merged, map[string]any{"a": "x", "b": "y"})
	assert.Equal("\"b\" must be a number", res.Error.Error())

	res = Validate(merged, map[string]any{"a": "x", "b": 1, "c": true})
	assert.Equal(KindObjectKey, res.Error.Kind)
}

func TestArrayValidator(t *testing.T) {
	assert := assert.New(t)

	tuple := &ArrayValidator{
		Tuple:      []Validator{&StringValidator{}, &NumberValidator{}},
		Additional: UnknownForbid,
	}
	assert.True(Validate(tuple, []any{"x"}).Ok())
	assert.True(Validate(tuple, []any{"x", 1}).Ok())
	res := Validate(tuple, []any{"x", 1, "y"})
	assert.Equal(KindArrayExtra, res.Error.Kind)

	tuple.Additional = UnknownValidate
	tuple.AdditionalSchema = &StringValidator{}
	assert.True(Validate(tuple, []any{"x", 1, "y"}).Ok())
	res = Validate(tuple, []any{"x", 1, 2})
	assert.Equal("[2]", res.Error.Path())
	assert.Equal("\"[2]\" must be a string", res.Error.Error())

	list := &ArrayValidator{Items: &NumberValidator{}, MinItems: intPtr(1), MaxItems: intPtr(3), UniqueItems: true}
	assert.True(Validate(list, []any{1, 2}).Ok())
	assert.Equal(KindArrayMin, Validate(list, []any{}).Error.Kind)
	assert.Equal(KindArrayMax, Validate(list, []any{1, 2, 3, 4}).Error.Kind)
	assert.Equal(KindArrayUnique, Validate(list, []any{1, json.Number("1")}).Error.Kind)
	assert.Equal(KindArray, Validate(list, "x").Error.Kind)

	unchecked := &ArrayValidator{}
	assert.True(Validate(unchecked, []any{1, "a", nil}).Ok())
}

func TestAlternatives(t *testing.T) {
	assert := assert.New(t)

	anyOf := &AnyOfValidator{Branches: []Validator{&StringValidator{}, &NumberValidator{}}}
	assert.True(Validate(anyOf, "s").Ok())
	assert.True(Validate(anyOf, 10).Ok())
	res := Validate(anyOf, map[string]any{})
	assert.Equal(KindNoMatch, res.Error.Kind)
	assert.Equal(2, len(res.Error.Details))
	assert.Equal(KindString, res.Error.Innermost().Kind)

	oneOf := &OneOfValidator{Branches: []Validator{&NumberValidator{}, &NumberValidator{Integer: true}}}
	assert.True(Validate(oneOf, 1.5).Ok())
	assert.Equal(KindAmbiguous, Validate(oneOf, 2).Error.Kind)
	assert.Equal(KindNoMatch, Validate(oneOf, "x").Error.Kind)

	not := &NotValidator{Branches: []Validator{&StringValidator{}, &NullValidator{}}}
	assert.True(Validate(not, 1).Ok())
	assert.Equal(KindForbiddenHit, Validate(not, "x").Error.Kind)
	assert.Equal(KindForbiddenHit, Validate(not, nil).Error.Kind)

	all := &AllValidator{Branches: []Validator{&StringValidator{}, &StringValidator{MaxLength: intPtr(3)}}}
	assert.True(Validate(all, "abc").Ok())
	assert.Equal(KindStringMax, Validate(all, "abcd").Error.Kind)
}

func TestAllPassThroughBranches(t *testing.T) {
	assert := assert.New(t)

	withDefault := &ObjectValidator{
		Keys: []Key{{Name: "b", Validator: &DefaultValidator{Value: 2, Inner: &NumberValidator{}}}},
	}
	only := &EnumValidator{Values: []any{map[string]any{"a": 1}}, Inner: &ObjectValidator{}}
	assert.True(IsPassThrough(only))
	assert.True(IsPassThrough(&DefaultValidator{Value: 1, Inner: &ConstValidator{Value: 1}}))
	assert.False(IsPassThrough(withDefault))
	assert.False(IsPassThrough(&AllValidator{Branches: []Validator{only, withDefault}}))

	all := &AllValidator{Branches: []Validator{withDefault, only}}
	res := Validate(all, map[string]any{"a": 1})
	assert.Nil(res.Error)
	assert.Equal(map[string]any{"a": 1, "b": 2}, res.Value)
	assert.Equal(KindOnly, Validate(all, map[string]any{"a": 3}).Error.Kind)

	anyOf := &AnyOfValidator{Branches: []Validator{
		&NumberValidator{},
		&DefaultValidator{Value: "x", Inner: &StringValidator{}},
	}}
	d, ok := anyOf.DefaultValue()
	assert.True(ok)
	assert.Equal("x", d)
	assert.Equal("x", Validate(anyOf, Undefined).Value)
	_, ok = (&OneOfValidator{Branches: []Validator{&NumberValidator{}}}).DefaultValue()
	assert.False(ok)
}

func TestImplicitShapes(t *testing.T) {
	assert := assert.New(t)

	obj := &ObjectValidator{Implicit: true, Keys: []Key{{Name: "a", Validator: &StringValidator{}, Required: true}}}
	assert.Equal("x", Validate(obj, "x").Value)
	assert.Equal(KindRequired, Validate(obj, map[string]any{}).Error.Kind)

	list := &ArrayValidator{Implicit: true, Items: &StringValidator{}}
	assert.Equal(5, Validate(list, 5).Value)
	assert.Equal(KindString, Validate(list, []any{1}).Error.Kind)

	// an explicit shape in the merge keeps the type check
	merged := MergeObjects(obj, &ObjectValidator{Implicit: true})
	assert.True(merged.Implicit)
	merged = MergeObjects(obj, &ObjectValidator{})
	assert.False(merged.Implicit)
	assert.Equal(KindObject, Validate(merged, "x").Error.Kind)
}

func TestEnumAndConst(t *testing.T) {
	assert := assert.New(t)

	enum := &EnumValidator{Values: []any{"a", json.Number("1")}, Inner: &StringValidator{}}
	assert.True(Validate(enum, "a").Ok())
	assert.True(Validate(enum, 1).Ok())
	res := Validate(enum, "c")
	assert.Equal(KindOnly, res.Error.Kind)
	assert.Equal("\"value\" must be one of [a, 1]", res.Error.Error())

	c := &ConstValidator{Value: map[string]any{"k": 1.0}}
	assert.True(Validate(c, map[string]any{"k": json.Number("1")}).Ok())
	assert.Equal(KindOnly, Validate(c, map[string]any{"k": 2}).Error.Kind)
}

func TestDefaultIsCopied(t *testing.T) {
	assert := assert.New(t)

	def := &DefaultValidator{Value: map[string]any{"tags": []any{"a"}}, Inner: &AnyValidator{}}
	first := Validate(def, Undefined).Value.(map[string]any)
	first["tags"].([]any)[0] = "changed"

	second := Validate(def, Undefined).Value
	assert.Equal(map[string]any{"tags": []any{"a"}}, second)
}

func TestResultDecode(t *testing.T) {
	assert := assert.New(t)

	type profile struct {
		User   string `json:"user"`
		Locale string `json:"locale"`
		Posts  int    `json:"posts"`
	}

	obj := &ObjectValidator{
		Keys: []Key{
			{Name: "locale", Validator: &DefaultValidator{Value: "en-US", Inner: &StringValidator{}}},
			{Name: "posts", Validator: &DefaultValidator{Value: json.Number("0"), Inner: &NumberValidator{}}},
			{Name: "user", Validator: &StringValidator{}, Required: true},
		},
	}
	res, err := ValidateBytes(obj, []byte(`{"user": "a@b.com", "posts": 12}`))
	assert.Nil(err)
	assert.True(res.Ok())

	var p profile
	err = res.Decode(&p)
	assert.Nil(err)
	assert.Equal(profile{User: "a@b.com", Locale: "en-US", Posts: 12}, p)

	res, err = ValidateBytes(obj, []byte(`{}`))
	assert.Nil(err)
	assert.NotNil(res.Decode(&p))

	_, err = ValidateBytes(obj, []byte(`{bad json`))
	assert.NotNil(err)
}

func TestJSONEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(JSONEqual(json.Number("1.0"), 1))
	assert.True(JSONEqual([]any{"a", nil}, []any{"a", nil}))
	assert.False(JSONEqual([]any{"a"}, []any{"a", "b"}))
	assert.False(JSONEqual(map[string]any{"a": 1}, map[string]any{"b": 1}))
	assert.False(JSONEqual("1", 1))
	assert.True(JSONEqual(true, true))
}
