package bento

import "reflect"

// componentInfo is everything the World keeps for one component type: the
// pool owning the instances and the membership index over entities.
type componentInfo struct {
	typ     reflect.Type
	storage componentStorage
	members SparseSet
	id      ComponentID
}

// Value is a component value waiting to be placed into its pool. Build one
// with With.
type Value interface {
	place(w *World) componentRef
}

type typedValue[T any] struct {
	v T
}

// With wraps a component value for Commands.Spawn.
//
// Example:
//
//	c.Spawn(bento.With(Name{"a"}), bento.With(ID{1}))
func With[T any](v T) Value {
	return typedValue[T]{v: v}
}

// place creates the instance in T's pool right away and returns its handle.
func (tv typedValue[T]) place(w *World) componentRef {
	info := registerComponent[T](w)
	pool := info.storage.(*Pool[T])
	slot := pool.Create()
	*pool.at(slot) = tv.v
	return componentRef{id: info.id, slot: slot}
}

// registerComponent returns the componentInfo of T, creating its pool and
// membership index on first use.
func registerComponent[T any](w *World) *componentInfo {
	id := ComponentIDFor[T](w.registry)
	if info := w.componentInfo(id); info != nil {
		return info
	}
	if int(id) >= len(w.components) {
		w.components = extendSlice(w.components, int(id)+1-len(w.components))
	}
	info := &componentInfo{
		id:      id,
		typ:     reflect.TypeFor[T](),
		storage: NewPool[T](),
	}
	w.components[id] = info
	w.log.Debug("component registered", componentField(info))
	return info
}

// componentInfo returns the storage of a component ID, or nil when no entity
// of that type has ever been spawned.
func (w *World) componentInfo(id ComponentID) *componentInfo {
	if int(id) >= len(w.components) {
		return nil
	}
	return w.components[id]
}

// componentInfoOf is the lookup used by read paths: it never assigns an ID.
func componentInfoOf[T any](w *World) *componentInfo {
	id, ok := LookupComponentID[T](w.registry)
	if !ok {
		return nil
	}
	return w.componentInfo(id)
}
