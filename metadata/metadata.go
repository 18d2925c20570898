package metadata

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Metadata is an immutable map[string]interface{} implementation
type Metadata interface {
	// Value returns the value associated with this metadata for key, or nil
	// if no value is associated with key. Successive calls to Value with
	// the same key returns the same result.
	Value(key string) interface{}

	// AsMap return the Metadata as a map[string]interface{}
	AsMap() map[string]interface{}
}

// New return a new Metadata instance without any information
func New() Metadata {
	return new(emptyData)
}

// FromMap returns a new Metadata instance filled with the map data
func FromMap(data map[string]interface{}) Metadata {
	meta := New()
	for k, v := range data {
		meta = WithValue(meta, k, v)
	}

	return meta
}

// WithValue returns a copy of parent in which the value associated with key is val.
func WithValue(parent Metadata, key string, val interface{}) Metadata {
	if parent == nil {
		parent = New()
	}

	return &valueData{parent, key, val}
}

// UnmarshalJSON returns the Metadata represented by the JSON object in data
func UnmarshalJSON(data []byte) (Metadata, error) {
	if len(data) == 0 {
		return New(), nil
	}

	var values map[string]interface{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata an object was expected")
	}

	return FromMap(values), nil
}

// emptyData represents the empty root of a metadata chain
type emptyData int

var (
	// Ensure emptyData implements the Metadata interface
	_ Metadata = new(emptyData)
	// Ensure emptyData implements the json.Marshaler interface
	_ json.Marshaler = new(emptyData)
)

func (*emptyData) Value(key string) interface{} {
	return nil
}

func (*emptyData) AsMap() map[string]interface{} {
	return map[string]interface{}{}
}

func (*emptyData) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

// valueData represents a key, value pair in a metadata chain
type valueData struct {
	Metadata
	key string
	val interface{}
}

var (
	// Ensure valueData implements the Metadata interface
	_ Metadata = new(valueData)
	// Ensure valueData implements the json.Marshaler interface
	_ json.Marshaler = new(valueData)
)

func (v *valueData) Value(key string) interface{} {
	if v.key == key {
		return v.val
	}

	return v.Metadata.Value(key)
}

func (v *valueData) AsMap() map[string]interface{} {
	m := v.Metadata.AsMap()
	m[v.key] = v.val

	return m
}

func (v *valueData) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.AsMap())
}
