// SPDX-License-Identifier: MIT

package scanspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Description is the serialized form of a compound scan.
type Description struct {
	// Generators are listed outer to inner.
	Generators []Component `yaml:"generators"`
	// Excluders couple axes of adjacent generators.
	Excluders []Component `yaml:"excluders,omitempty"`
	// Mutators apply in order.
	Mutators []Component `yaml:"mutators,omitempty"`
	// Duration is the per-point exposure time; nil leaves it unset.
	Duration *float64 `yaml:"duration,omitempty"`
	// Continuous defaults to true when nil.
	Continuous *bool `yaml:"continuous,omitempty"`
	// DelayAfter is the per-point settle time.
	DelayAfter float64 `yaml:"delay_after,omitempty"`
}

// Component is one tagged entry: its type and the remaining fields.
type Component struct {
	Type   string
	Params map[string]any
}

// UnmarshalYAML splits the mapping into the type tag and its parameters.
func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: component must be a mapping", value.Line)
	}
	var fields map[string]any
	if err := value.Decode(&fields); err != nil {
		return err
	}
	kind, ok := fields["type"].(string)
	if !ok || kind == "" {
		return fmt.Errorf("line %d: component needs a string type", value.Line)
	}
	delete(fields, "type")
	c.Type, c.Params = kind, fields

	return nil
}

// MarshalYAML writes the type tag first and the parameters in key order.
func (c Component) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Type},
	)
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var v yaml.Node
		if err := v.Encode(c.Params[k]); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", c.Type, k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, &v)
	}

	return node, nil
}

// Decode strictly decodes the parameters into v: unknown fields fail.
func (c Component) Decode(v any) error {
	params := c.Params
	if params == nil {
		params = map[string]any{}
	}
	data, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Type, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %v: %w", c.Type, err, ErrBadComponent)
	}

	return nil
}

// Parse validates data against the scan schema and decodes it strictly.
//
// Errors: ErrSyntax, ErrSchema.
func Parse(data []byte) (*Description, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := validate(generic); err != nil {
		return nil, err
	}

	var desc Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return &desc, nil
}

// Load reads and parses the scan description at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan description: %w", err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return desc, nil
}

// Marshal encodes desc as YAML. Parse(Marshal(d)) describes the same scan.
func Marshal(desc *Description) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return nil, fmt.Errorf("encode scan description: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode scan description: %w", err)
	}

	return buf.Bytes(), nil
}
