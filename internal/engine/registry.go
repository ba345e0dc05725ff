package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by components that can be authored in scene
// files. Props use JSON-decoded types (float64 numbers, []any arrays).
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates a Serializable component with default values.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Registering the
// same name twice is a programming error and panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a registered component and applies props to it.
func CreateComponent(name string, props map[string]any) (Serializable, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	c := factory()
	if props != nil {
		c.Deserialize(props)
	}
	return c, nil
}

// GetRegisteredComponents returns a sorted list of all registered names.
func GetRegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropFloat reads a numeric prop.
func PropFloat(data map[string]any, key string) (float32, bool) {
	switch v := data[key].(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	}
	return 0, false
}

// PropVector3 reads a three element numeric array prop, as decoded from
// JSON or as written by Serialize.
func PropVector3(data map[string]any, key string) ([3]float32, bool) {
	var out [3]float32
	switch v := data[key].(type) {
	case []any:
		if len(v) < 3 {
			return out, false
		}
		for i := 0; i < 3; i++ {
			f, ok := v[i].(float64)
			if !ok {
				return out, false
			}
			out[i] = float32(f)
		}
		return out, true
	case []float32:
		if len(v) < 3 {
			return out, false
		}
		copy(out[:], v)
		return out, true
	case [3]float32:
		return v, true
	}
	return out, false
}
