package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Metadata is the front matter of a note: key-value pairs that keep the
// order in which they were first set. Emitted front matter is read by
// humans, so the order is part of the output format.
type Metadata struct {
	keys   []string
	values map[string]any
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and only its value changes.
func (m *Metadata) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetDefault stores value under key only if key is absent.
// It reports whether the value was stored.
func (m *Metadata) SetDefault(key string, value any) bool {
	if _, ok := m.values[key]; ok {
		return false
	}
	m.Set(key, value)
	return true
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// String returns the value under key if it is a string, or "".
func (m *Metadata) String(key string) string {
	s, _ := m.values[key].(string)
	return s
}

// Strings returns the value under key as a string slice.
// YAML decoding yields []any, so both shapes are accepted.
func (m *Metadata) Strings(key string) []string {
	switch v := m.values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// MarshalYAML implements yaml.Marshaler, emitting a mapping in insertion order.
func (m *Metadata) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", k, err)
		}
		if err := value.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", k, err)
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping the document's key order.
func (m *Metadata) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("front matter must be a mapping, got %s", node.ShortTag())
	}
	m.keys = nil
	m.values = make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("failed to decode %q: %w", node.Content[i].Value, err)
		}
		m.Set(node.Content[i].Value, value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, emitting an object in insertion order.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
