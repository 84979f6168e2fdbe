package transpile

import (
	"bytes"
	"encoding/json"
)

// OrderedMap preserves key insertion order through json.Marshal, unlike a
// plain map[string]any (which encoding/json sorts alphabetically). The
// JSON and JSON-LD transpilers both need this: spec.md requires output
// deterministic enough for "two `--all` runs to emit byte-identical
// output", and a tree walk naturally produces fields in a stable,
// meaningful order (the node's own field order) rather than an
// alphabetical one.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: map[string]any{}}
}

func (m *OrderedMap) Set(key string, value any) *OrderedMap {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
