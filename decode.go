// FILE: lixenwraith/params/decode.go
package params

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Decode reads parameter names from
const TagName = "param"

// Decode binds the params into the struct pointed to by target. Field names come
// from the `param` tag; a single value decodes as a string and several as a list,
// with weakly typed conversion to the field type. Duration strings and
// comma-separated lists are understood. Decoding failures match ErrBadParam.
//
//	type Query struct {
//	    Q       string        `param:"q"`
//	    Rows    int           `param:"rows"`
//	    Filters []string      `param:"fq"`
//	    Timeout time.Duration `param:"timeAllowed"`
//	}
func (p *Params) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	input := make(map[string]any)
	for _, pair := range p.ToOrderedList() {
		input[pair.Name] = pair.Value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %w", ErrBadParam, err)
	}
	return nil
}
