// File: lixenwraith/params/builder.go
package params

import (
	"errors"
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate built params.
// It receives the fully layered *Params and should return an error if validation fails.
type ValidatorFunc func(p *Params) error

// Builder layers request params with handler configured defaults, appends and invariants.
//
// The result is WrapDefaults(invariants, WrapAppended(WrapDefaults(params, defaults), appends)):
// invariants always win, appends add values after the request's, and defaults
// fill what the request leaves unset.
type Builder struct {
	params     Source
	defaults   layer
	appends    layer
	invariants layer
	err        error
	validators []ValidatorFunc
}

// layer is one configured level: an explicit source and/or a file
type layer struct {
	src  Source
	file string
}

// NewBuilder creates a params builder
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithParams sets the request params
func (b *Builder) WithParams(src Source) *Builder {
	b.params = src
	return b
}

// WithQuery parses a query string as the request params
func (b *Builder) WithQuery(query string) *Builder {
	o, err := ParseQuery(query)
	if err != nil {
		b.err = err
		return b
	}
	b.params = o
	return b
}

// WithDefaults sets params used when the request does not set them
func (b *Builder) WithDefaults(src Source) *Builder {
	b.defaults.src = src
	return b
}

// WithDefaultsFile loads defaults from a TOML, YAML or JSON file.
// Values set with WithDefaults take precedence over the file.
func (b *Builder) WithDefaultsFile(path string) *Builder {
	b.defaults.file = path
	return b
}

// WithAppends sets params whose values are added after the request's
func (b *Builder) WithAppends(src Source) *Builder {
	b.appends.src = src
	return b
}

// WithAppendsFile loads appends from a file
func (b *Builder) WithAppendsFile(path string) *Builder {
	b.appends.file = path
	return b
}

// WithInvariants sets params that override anything the request sets
func (b *Builder) WithInvariants(src Source) *Builder {
	b.invariants.src = src
	return b
}

// WithInvariantsFile loads invariants from a file
func (b *Builder) WithInvariantsFile(path string) *Builder {
	b.invariants.file = path
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build composes the configured layers.
// A missing file is not fatal: the params are returned along with an error matching ErrFileNotFound.
func (b *Builder) Build() (*Params, error) {
	if b.err != nil {
		return nil, b.err
	}

	var loadErrors []error
	resolve := func(l layer) (Source, error) {
		if l.file == "" {
			return l.src, nil
		}
		o, err := LoadFile(l.file)
		if err != nil {
			if errors.Is(err, ErrFileNotFound) {
				loadErrors = append(loadErrors, err)
				return l.src, nil
			}
			return nil, err
		}
		return WrapDefaults(l.src, o), nil
	}

	defaults, err := resolve(b.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	appends, err := resolve(b.appends)
	if err != nil {
		return nil, fmt.Errorf("failed to load appends: %w", err)
	}
	invariants, err := resolve(b.invariants)
	if err != nil {
		return nil, fmt.Errorf("failed to load invariants: %w", err)
	}

	p := WrapDefaults(b.params, defaults)
	p = WrapAppended(p, appends)
	p = WrapDefaults(invariants, p)

	// Run validators
	for _, validator := range b.validators {
		if err := validator(p); err != nil {
			return nil, fmt.Errorf("params validation failed: %w", err)
		}
	}

	// ErrFileNotFound or nil
	return p, errors.Join(loadErrors...)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Params {
	p, err := b.Build()
	if err != nil {
		// A missing file leaves the remaining layers usable
		if !errors.Is(err, ErrFileNotFound) {
			panic(fmt.Sprintf("params build failed: %v", err))
		}
	}
	return p
}

// BuildAndDecode builds the params and decodes them into the provided target struct pointer
func (b *Builder) BuildAndDecode(target any) error {
	p, err := b.Build()
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		return err
	}

	if err := p.Decode(target); err != nil {
		return fmt.Errorf("failed to decode built params into target: %w", err)
	}

	// ErrFileNotFound or nil
	return err
}
