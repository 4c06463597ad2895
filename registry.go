package bento

import (
	"fmt"
	"reflect"
)

// MaxComponentTypes is the maximum number of distinct component types a
// single TypeRegistry can hand out IDs for.
const MaxComponentTypes = 256

// ComponentID identifies a component type within a TypeRegistry.
type ComponentID uint32

// ResourceID identifies a resource type within a TypeRegistry. Resource IDs
// live in their own space: a type used both as a component and as a resource
// may get different numbers for each.
type ResourceID uint32

// typeCategory assigns sequential IDs to types on first sight.
type typeCategory struct {
	ids   map[reflect.Type]uint32
	types []reflect.Type // indexed by ID
}

func (c *typeCategory) lookup(t reflect.Type) (uint32, bool) {
	id, ok := c.ids[t]
	return id, ok
}

func (c *typeCategory) idFor(t reflect.Type) uint32 {
	if id, ok := c.ids[t]; ok {
		return id
	}
	if c.ids == nil {
		c.ids = make(map[reflect.Type]uint32, 16)
	}
	id := uint32(len(c.types))
	c.ids[t] = id
	c.types = append(c.types, t)
	return id
}

// TypeRegistry hands out stable small integers for component and resource
// types. A World owns one; IDs are never removed for the registry's lifetime.
type TypeRegistry struct {
	components typeCategory
	resources  typeCategory
}

// NewTypeRegistry creates an empty registry. Two fresh registries assign
// identical IDs when types are seen in the same order, which keeps tests
// independent of each other.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{}
}

// ComponentIDFor returns the component ID of T in r, assigning the next free
// ID on the first call.
//
// Parameters:
//   - r: The registry to resolve T in.
//
// Returns:
//   - The ComponentID of T.
func ComponentIDFor[T any](r *TypeRegistry) ComponentID {
	return r.componentID(reflect.TypeFor[T]())
}

// LookupComponentID reports the component ID of T without assigning one.
func LookupComponentID[T any](r *TypeRegistry) (ComponentID, bool) {
	return r.lookupComponent(reflect.TypeFor[T]())
}

// ResourceIDFor returns the resource ID of T in r, assigning the next free ID
// on the first call.
func ResourceIDFor[T any](r *TypeRegistry) ResourceID {
	return ResourceID(r.resources.idFor(reflect.TypeFor[T]()))
}

// LookupResourceID reports the resource ID of T without assigning one.
func LookupResourceID[T any](r *TypeRegistry) (ResourceID, bool) {
	id, ok := r.resources.lookup(reflect.TypeFor[T]())
	return ResourceID(id), ok
}

// ComponentType returns the Go type registered under id, or nil.
func (r *TypeRegistry) ComponentType(id ComponentID) reflect.Type {
	if int(id) >= len(r.components.types) {
		return nil
	}
	return r.components.types[id]
}

// ResourceType returns the Go type registered under id, or nil.
func (r *TypeRegistry) ResourceType(id ResourceID) reflect.Type {
	if int(id) >= len(r.resources.types) {
		return nil
	}
	return r.resources.types[id]
}

// ComponentCount returns how many component types have an ID.
func (r *TypeRegistry) ComponentCount() int { return len(r.components.types) }

// ResourceCount returns how many resource types have an ID.
func (r *TypeRegistry) ResourceCount() int { return len(r.resources.types) }

func (r *TypeRegistry) componentID(t reflect.Type) ComponentID {
	if id, ok := r.components.lookup(t); ok {
		return ComponentID(id)
	}
	if len(r.components.types) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: too many component types (max %d)", MaxComponentTypes))
	}
	return ComponentID(r.components.idFor(t))
}

func (r *TypeRegistry) lookupComponent(t reflect.Type) (ComponentID, bool) {
	id, ok := r.components.lookup(t)
	return ComponentID(id), ok
}
