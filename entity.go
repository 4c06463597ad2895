// Package bento provides an Entity-Component-System runtime whose structural
// changes are buffered during a tick and applied at a single point after all
// systems have run.
package bento

// Entity is an opaque identifier handed out by a World. IDs grow
// monotonically and are never reused, even after the entity is destroyed.
type Entity uint32

// NullEntity is never assigned to a live entity.
const NullEntity Entity = 0

// componentRef locates one component instance: the type's ID and the slot
// it occupies in that type's pool.
type componentRef struct {
	id   ComponentID
	slot uint32
}

// entityRecord holds what a single entity owns. It is filled once when the
// spawn is applied and stays fixed until the entity is destroyed.
type entityRecord struct {
	refs []componentRef // handles into the owning pools
	mask bitmask256     // component IDs present in refs
}

// slot returns the pool slot of the component with the given ID.
func (r *entityRecord) slot(id ComponentID) (uint32, bool) {
	if !r.mask.containsBit(id) {
		return 0, false
	}
	for _, ref := range r.refs {
		if ref.id == id {
			return ref.slot, true
		}
	}
	return 0, false
}

func (r *entityRecord) reset() {
	r.refs = r.refs[:0]
	r.mask = bitmask256{}
}
