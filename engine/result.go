package engine

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

func (res Result) Ok() bool {
	return res.Error == nil
}

// Err returns the validation error as an error, nil on success.
func (res Result) Err() error {
	if res.Error == nil {
		return nil
	}
	return res.Error
}

// Decode copies the normalized value into output, a pointer to a struct or
// map, matching fields by their json tags.
func (res Result) Decode(output any) error {
	if res.Error != nil {
		return res.Error
	}
	if IsUndefined(res.Value) {
		return errors.New("no value to decode")
	}
	config := &mapstructure.DecoderConfig{
		Metadata:         nil,
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           output,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return errors.Wrap(err, "decode result")
	}
	return decoder.Decode(res.Value)
}
