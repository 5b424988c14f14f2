// FILE: lixenwraith/params/structured.go
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EntryWriter receives the entries of WriteMap. value is a string or a []string.
type EntryWriter interface {
	Put(name string, value any) error
}

// EntryWriterFunc adapts a function to EntryWriter
type EntryWriterFunc func(name string, value any) error

func (f EntryWriterFunc) Put(name string, value any) error {
	return f(name, value)
}

// WriteMap writes ToOrderedList to w, skipping entries whose value is nil or the
// empty string. Only structured output skips; the string forms keep empty values.
func (p *Params) WriteMap(w EntryWriter) error {
	for _, pair := range p.ToOrderedList() {
		if pair.Value == nil || pair.Value == "" {
			continue
		}
		if err := w.Put(pair.Name, pair.Value); err != nil {
			return fmt.Errorf("failed to write parameter '%s': %w", pair.Name, err)
		}
	}
	return nil
}

// MarshalJSON encodes the params as a JSON object in name order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	err := p.WriteMap(EntryWriterFunc(func(name string, value any) error {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the params as a YAML mapping in name order.
func (p *Params) MarshalYAML() (any, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	err := p.WriteMap(EntryWriterFunc(func(name string, value any) error {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		val := &yaml.Node{}
		if err := val.Encode(value); err != nil {
			return err
		}
		mapping.Content = append(mapping.Content, key, val)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return mapping, nil
}

// EncodeTOML writes the params as a TOML document. TOML tables are unordered, so
// keys are written sorted; dotted names are written as quoted keys.
func (p *Params) EncodeTOML(w io.Writer) error {
	doc := make(map[string]any)
	err := p.WriteMap(EntryWriterFunc(func(name string, value any) error {
		doc[name] = value
		return nil
	}))
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}
