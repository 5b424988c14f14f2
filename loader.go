// FILE: lixenwraith/params/loader.go
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MaxFileSize limits the size of a params file
const MaxFileSize = 1 << 20

// LoadFile reads a TOML, YAML or JSON params file. The format is taken from the
// file extension, then detected from content. Nested tables flatten to dotted
// names, so a [f.title] table with hl = true yields "f.title.hl".
// A file that does not exist returns an error matching ErrFileNotFound.
func LoadFile(path string) (*Ordered, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat params file '%s': %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("params file '%s' is a directory", path)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("params file '%s' exceeds maximum size %d bytes", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
		}
	}

	o, err := Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load params file '%s': %w", path, err)
	}
	return o, nil
}

// Load parses params data in the given format: "toml", "yaml" (or "yml") or "json".
// TOML and YAML keep document order; JSON names are sorted.
func Load(data []byte, format string) (*Ordered, error) {
	switch strings.ToLower(format) {
	case "toml":
		return loadTOML(data)
	case "yaml", "yml":
		return loadYAML(data)
	case "json":
		return loadJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func loadTOML(data []byte) (*Ordered, error) {
	doc := make(map[string]any)
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	flat := flattenMap(doc, "")
	order := make([]string, 0, len(flat))
	for _, key := range md.Keys() {
		path := strings.Join(key, ".")
		if _, leaf := flat[path]; leaf && !slices.Contains(order, path) {
			order = append(order, path)
		}
	}
	// Leaves missing from the metadata follow in sorted order
	var rest []string
	for path := range flat {
		if !slices.Contains(order, path) {
			rest = append(rest, path)
		}
	}
	slices.Sort(rest)

	return fromFlat(flat, append(order, rest...))
}

func loadJSON(data []byte) (*Ordered, error) {
	doc := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Keep numbers as written
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	flat := flattenMap(doc, "")
	order := make([]string, 0, len(flat))
	for path := range flat {
		order = append(order, path)
	}
	slices.Sort(order)

	return fromFlat(flat, order)
}

func loadYAML(data []byte) (*Ordered, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	o := NewOrdered()
	if len(doc.Content) == 0 {
		return o, nil // Empty document
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML params must be a mapping, got %s", nodeKind(root))
	}
	if err := walkYAML(o, "", root); err != nil {
		return nil, err
	}
	return o, nil
}

// walkYAML adds the leaves of a mapping node in document order.
func walkYAML(o *Ordered, prefix string, mapping *yaml.Node) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		path := mapping.Content[i].Value
		if prefix != "" {
			path = prefix + "." + path
		}

		node := resolveAlias(mapping.Content[i+1])
		switch node.Kind {
		case yaml.MappingNode:
			if err := walkYAML(o, path, node); err != nil {
				return err
			}
		case yaml.SequenceNode:
			for _, item := range node.Content {
				item = resolveAlias(item)
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("parameter '%s': list items must be scalars, got %s", path, nodeKind(item))
				}
				if item.Tag != "!!null" {
					o.Add(path, item.Value)
				}
			}
		case yaml.ScalarNode:
			if node.Tag != "!!null" {
				o.Add(path, node.Value)
			}
		default:
			return fmt.Errorf("parameter '%s': unsupported YAML node %s", path, nodeKind(node))
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// fromFlat builds a store from flattened leaves in the given name order.
func fromFlat(flat map[string]any, order []string) (*Ordered, error) {
	o := NewOrdered()
	for _, path := range order {
		values, err := formatValues(flat[path])
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': %w", path, err)
		}
		o.Add(path, values...)
	}
	return o, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		// .conf, .params and anything else: detect from content
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
// TOML is tried before YAML since most TOML documents are also a valid YAML scalar.
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
