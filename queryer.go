package bento

import "reflect"

// Queryer is the read-only view systems use to inspect a World. It always
// reflects the state as of the last applied pass: requests buffered in the
// current pass are not visible through it.
type Queryer struct {
	world *World
}

// Exists reports whether e is a live entity.
func (q *Queryer) Exists(e Entity) bool {
	_, ok := q.world.entities[e]
	return ok
}

// Has reports whether e is live and holds a component of type T.
func Has[T any](q *Queryer, e Entity) bool {
	rec, ok := q.world.entities[e]
	if !ok {
		return false
	}
	id, ok := LookupComponentID[T](q.world.registry)
	if !ok {
		return false
	}
	return rec.mask.containsBit(id)
}

// Get returns the component of type T held by e. It panics if e does not
// exist or holds no T; use TryGet when absence is expected.
//
// The pointer stays valid until e is destroyed.
func Get[T any](q *Queryer, e Entity) *T {
	c, ok := TryGet[T](q, e)
	if !ok {
		if !q.Exists(e) {
			q.world.failf("get %s on entity %d which does not exist", reflect.TypeFor[T](), e)
		}
		q.world.failf("entity %d has no %s", e, reflect.TypeFor[T]())
	}
	return c
}

// TryGet returns the component of type T held by e, or nil and false.
func TryGet[T any](q *Queryer, e Entity) (*T, bool) {
	rec, ok := q.world.entities[e]
	if !ok {
		return nil, false
	}
	id, ok := LookupComponentID[T](q.world.registry)
	if !ok {
		return nil, false
	}
	slot, ok := rec.slot(id)
	if !ok {
		return nil, false
	}
	pool := q.world.components[id].storage.(*Pool[T])
	return pool.At(slot), true
}

// HasResource reports whether a resource of type T is live.
func HasResource[T any](q *Queryer) bool {
	id, ok := LookupResourceID[T](q.world.registry)
	return ok && q.world.resources.has(id)
}

// GetResource returns the live resource of type T. It panics if there is
// none.
func GetResource[T any](q *Queryer) *T {
	r, ok := TryGetResource[T](q)
	if !ok {
		q.world.failf("resource %s is not set", reflect.TypeFor[T]())
	}
	return r
}

// TryGetResource returns the live resource of type T, or nil and false.
func TryGetResource[T any](q *Queryer) (*T, bool) {
	id, ok := LookupResourceID[T](q.world.registry)
	if !ok {
		return nil, false
	}
	v := q.world.resources.get(id)
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}
