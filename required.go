// FILE: lixenwraith/params/required.go
package params

import "errors"

// Required is a view whose accessors treat an absent parameter as a *MissingError.
type Required struct {
	p *Params
}

// Required returns the required-parameter view of p
func (p *Params) Required() Required {
	return Required{p: p}
}

// required maps an absent lookup to a MissingError, leaving parse errors as they are.
func required(name string, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return &MissingError{Name: name}
	}
	return nil
}

// Check reports every name that is not set, joined into one error.
func (r Required) Check(names ...string) error {
	var missing []error
	for _, name := range names {
		if !r.p.Has(name) {
			missing = append(missing, &MissingError{Name: name})
		}
	}
	return errors.Join(missing...)
}

func (r Required) Get(name string) (string, error) {
	v, ok := r.p.Get(name)
	return v, required(name, ok, nil)
}

func (r Required) Values(name string) ([]string, error) {
	v, ok := r.p.Values(name)
	return v, required(name, ok, nil)
}

// FieldParam requires "f.<field>.<param>" or param; a miss is reported under the field name.
func (r Required) FieldParam(field, param string) (string, error) {
	v, ok := r.p.FieldParam(field, param)
	return v, required(FieldName(field, param), ok, nil)
}

func (r Required) FieldValues(field, param string) ([]string, error) {
	v, ok := r.p.FieldValues(field, param)
	return v, required(FieldName(field, param), ok, nil)
}

func (r Required) Bool(name string) (bool, error) {
	v, ok, err := r.p.Bool(name)
	return v, required(name, ok, err)
}

func (r Required) FieldBool(field, param string) (bool, error) {
	v, ok, err := r.p.FieldBool(field, param)
	return v, required(FieldName(field, param), ok, err)
}

func (r Required) Int(name string) (int, error) {
	v, ok, err := r.p.Int(name)
	return v, required(name, ok, err)
}

func (r Required) FieldInt(field, param string) (int, error) {
	v, ok, err := r.p.FieldInt(field, param)
	return v, required(FieldName(field, param), ok, err)
}

func (r Required) Int64(name string) (int64, error) {
	v, ok, err := r.p.Int64(name)
	return v, required(name, ok, err)
}

func (r Required) FieldInt64(field, param string) (int64, error) {
	v, ok, err := r.p.FieldInt64(field, param)
	return v, required(FieldName(field, param), ok, err)
}

func (r Required) Float32(name string) (float32, error) {
	v, ok, err := r.p.Float32(name)
	return v, required(name, ok, err)
}

func (r Required) FieldFloat32(field, param string) (float32, error) {
	v, ok, err := r.p.FieldFloat32(field, param)
	return v, required(FieldName(field, param), ok, err)
}

func (r Required) Float64(name string) (float64, error) {
	v, ok, err := r.p.Float64(name)
	return v, required(name, ok, err)
}

func (r Required) FieldFloat64(field, param string) (float64, error) {
	v, ok, err := r.p.FieldFloat64(field, param)
	return v, required(FieldName(field, param), ok, err)
}
