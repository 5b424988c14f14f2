// File: lixenwraith/params/typed.go
package params

// Typed accessors come in three shapes per type:
//
//	T(name)              (value, present, error)  absent is (zero, false, nil)
//	TDefault(name, def)  (value, error)           absent is def
//	PrimitiveT(name)     (value, error)           absent is the zero value
//
// and the same three for field parameters. A present value that does not parse
// is always a *ParamError, never silently replaced by the default.

// coerce parses a raw value read under name
func coerce[T any](name, value, kind string, parse func(string) (T, error)) (T, error) {
	v, err := parse(value)
	if err != nil {
		var zero T
		return zero, &ParamError{Name: name, Value: value, Kind: kind, Err: err}
	}
	return v, nil
}

func typed[T any](p *Params, name, kind string, parse func(string) (T, error)) (T, bool, error) {
	value, ok := p.Get(name)
	if !ok {
		var zero T
		return zero, false, nil
	}
	v, err := coerce(name, value, kind, parse)
	return v, true, err
}

func typedField[T any](p *Params, field, param, kind string, parse func(string) (T, error)) (T, bool, error) {
	name, value, ok := p.fieldLookup(field, param)
	if !ok {
		var zero T
		return zero, false, nil
	}
	v, err := coerce(name, value, kind, parse)
	return v, true, err
}

func orDefault[T any](v T, ok bool, err error, def T) (T, error) {
	if err != nil {
		return v, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Bool returns the boolean value of a parameter. Use it when absence must be
// told apart from false; see BoolDefault and PrimitiveBool otherwise.
func (p *Params) Bool(name string) (bool, bool, error) {
	return typed(p, name, KindBool, ParseBool)
}

// BoolDefault returns the boolean value of a parameter, or def if not set.
func (p *Params) BoolDefault(name string, def bool) (bool, error) {
	v, ok, err := p.Bool(name)
	return orDefault(v, ok, err, def)
}

// PrimitiveBool returns the boolean value of a parameter, or false if not set.
func (p *Params) PrimitiveBool(name string) (bool, error) {
	return p.BoolDefault(name, false)
}

// FieldBool returns the boolean value of the field parameter or of param.
func (p *Params) FieldBool(field, param string) (bool, bool, error) {
	return typedField(p, field, param, KindBool, ParseBool)
}

// FieldBoolDefault returns the boolean value of the field parameter or of param, or def.
func (p *Params) FieldBoolDefault(field, param string, def bool) (bool, error) {
	v, ok, err := p.FieldBool(field, param)
	return orDefault(v, ok, err, def)
}

// PrimitiveFieldBool returns the boolean value of the field parameter or of param, or false.
func (p *Params) PrimitiveFieldBool(field, param string) (bool, error) {
	return p.FieldBoolDefault(field, param, false)
}

// Int returns the 32-bit range integer value of a parameter.
func (p *Params) Int(name string) (int, bool, error) {
	return typed(p, name, KindInt, ParseInt)
}

// IntDefault returns the integer value of a parameter, or def if not set.
func (p *Params) IntDefault(name string, def int) (int, error) {
	v, ok, err := p.Int(name)
	return orDefault(v, ok, err, def)
}

// PrimitiveInt returns the integer value of a parameter, or 0 if not set.
func (p *Params) PrimitiveInt(name string) (int, error) {
	return p.IntDefault(name, 0)
}

// FieldInt returns the integer value of the field parameter or of param.
func (p *Params) FieldInt(field, param string) (int, bool, error) {
	return typedField(p, field, param, KindInt, ParseInt)
}

// FieldIntDefault returns the integer value of the field parameter or of param, or def.
func (p *Params) FieldIntDefault(field, param string, def int) (int, error) {
	v, ok, err := p.FieldInt(field, param)
	return orDefault(v, ok, err, def)
}

// PrimitiveFieldInt returns the integer value of the field parameter or of param, or 0.
func (p *Params) PrimitiveFieldInt(field, param string) (int, error) {
	return p.FieldIntDefault(field, param, 0)
}

// Int64 returns the int64 value of a parameter.
func (p *Params) Int64(name string) (int64, bool, error) {
	return typed(p, name, KindInt64, ParseInt64)
}

// Int64Default returns the int64 value of a parameter, or def if not set.
func (p *Params) Int64Default(name string, def int64) (int64, error) {
	v, ok, err := p.Int64(name)
	return orDefault(v, ok, err, def)
}

// PrimitiveInt64 returns the int64 value of a parameter, or 0 if not set.
func (p *Params) PrimitiveInt64(name string) (int64, error) {
	return p.Int64Default(name, 0)
}

// FieldInt64 returns the int64 value of the field parameter or of param.
func (p *Params) FieldInt64(field, param string) (int64, bool, error) {
	return typedField(p, field, param, KindInt64, ParseInt64)
}

// FieldInt64Default returns the int64 value of the field parameter or of param, or def.
func (p *Params) FieldInt64Default(field, param string, def int64) (int64, error) {
	v, ok, err := p.FieldInt64(field, param)
	return orDefault(v, ok, err, def)
}

// PrimitiveFieldInt64 returns the int64 value of the field parameter or of param, or 0.
func (p *Params) PrimitiveFieldInt64(field, param string) (int64, error) {
	return p.FieldInt64Default(field, param, 0)
}

// Float32 returns the float32 value of a parameter.
func (p *Params) Float32(name string) (float32, bool, error) {
	return typed(p, name, KindFloat32, ParseFloat32)
}

// Float32Default returns the float32 value of a parameter, or def if not set.
func (p *Params) Float32Default(name string, def float32) (float32, error) {
	v, ok, err := p.Float32(name)
	return orDefault(v, ok, err, def)
}

// PrimitiveFloat32 returns the float32 value of a parameter, or 0 if not set.
func (p *Params) PrimitiveFloat32(name string) (float32, error) {
	return p.Float32Default(name, 0)
}

// FieldFloat32 returns the float32 value of the field parameter or of param.
func (p *Params) FieldFloat32(field, param string) (float32, bool, error) {
	return typedField(p, field, param, KindFloat32, ParseFloat32)
}

// FieldFloat32Default returns the float32 value of the field parameter or of param, or def.
func (p *Params) FieldFloat32Default(field, param string, def float32) (float32, error) {
	v, ok, err := p.FieldFloat32(field, param)
	return orDefault(v, ok, err, def)
}

// PrimitiveFieldFloat32 returns the float32 value of the field parameter or of param, or 0.
func (p *Params) PrimitiveFieldFloat32(field, param string) (float32, error) {
	return p.FieldFloat32Default(field, param, 0)
}

// Float64 returns the float64 value of a parameter.
func (p *Params) Float64(name string) (float64, bool, error) {
	return typed(p, name, KindFloat64, ParseFloat64)
}

// Float64Default returns the float64 value of a parameter, or def if not set.
func (p *Params) Float64Default(name string, def float64) (float64, error) {
	v, ok, err := p.Float64(name)
	return orDefault(v, ok, err, def)
}

// PrimitiveFloat64 returns the float64 value of a parameter, or 0 if not set.
func (p *Params) PrimitiveFloat64(name string) (float64, error) {
	return p.Float64Default(name, 0)
}

// FieldFloat64 returns the float64 value of the field parameter or of param.
func (p *Params) FieldFloat64(field, param string) (float64, bool, error) {
	return typedField(p, field, param, KindFloat64, ParseFloat64)
}

// FieldFloat64Default returns the float64 value of the field parameter or of param, or def.
func (p *Params) FieldFloat64Default(field, param string, def float64) (float64, error) {
	v, ok, err := p.FieldFloat64(field, param)
	return orDefault(v, ok, err, def)
}

// PrimitiveFieldFloat64 returns the float64 value of the field parameter or of param, or 0.
func (p *Params) PrimitiveFieldFloat64(field, param string) (float64, error) {
	return p.FieldFloat64Default(field, param, 0)
}
