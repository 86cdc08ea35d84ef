package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is a single id → display-name pair of a [Registry].
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Registry is an ordered, read-only id → display-name mapping.
//
// Author and genre registries share this type. Order is the order of the
// source so option lists render the way the data was authored.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a registry from entries. A repeated id keeps its first
// position and takes the last name.
func NewRegistry(entries ...Entry) *Registry {
	registry := &Registry{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		registry.put(entry)
	}
	return registry
}

// Name returns the display name for id and whether the id is registered.
func (r *Registry) Name(id string) (string, bool) {
	if r == nil {
		return "", false
	}
	position, ok := r.index[id]
	if !ok {
		return "", false
	}
	return r.entries[position].Name, true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Name(id)
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns a copy of the entries in source order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return []Entry{}
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) put(entry Entry) {
	if position, ok := r.index[entry.ID]; ok {
		r.entries[position].Name = entry.Name
		return
	}
	r.index[entry.ID] = len(r.entries)
	r.entries = append(r.entries, entry)
}

// # JSON

// UnmarshalJSON decodes a JSON object of id → name while keeping key order.
// A JSON null yields an empty registry.
func (r *Registry) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	*r = Registry{index: make(map[string]int)}
	if token == nil {
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry: expected object, got %v", token)
	}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("registry: %w", err)
		}
		id, _ := keyToken.(string)

		var name string
		if err := decoder.Decode(&name); err != nil {
			return fmt.Errorf("registry: value for %q: %w", id, err)
		}
		r.put(Entry{ID: id, Name: name})
	}

	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	return nil
}

// MarshalJSON encodes the registry as a JSON object in source order.
func (r Registry) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, entry := range r.entries {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(entry.ID)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
