package bento

import (
	"reflect"
	"slices"
)

// QueryIDs returns the entities holding every listed component type, in the
// membership order of the first type. The result is freshly allocated and
// owned by the caller. A type no entity has ever held yields an empty
// result.
//
// Candidates come from the first type's membership index; each candidate is
// tested against the other indexes, smallest first, stopping at the first
// miss.
//
// Parameters:
//   - ids: At least one component ID.
//
// Returns:
//   - The matching entities.
func (q *Queryer) QueryIDs(ids ...ComponentID) []Entity {
	if len(ids) == 0 {
		q.world.failf("query needs at least one component type")
	}
	var buf [4]*componentInfo
	infos := buf[:0]
	for _, id := range ids {
		info := q.world.componentInfo(id)
		if info == nil || info.members.Len() == 0 {
			return nil
		}
		infos = append(infos, info)
	}
	first, rest := infos[0], infos[1:]
	slices.SortFunc(rest, func(a, b *componentInfo) int {
		return a.members.Len() - b.members.Len()
	})

	result := make([]Entity, 0, first.members.Len())
	for e := range first.members.All() {
		matched := true
		for _, info := range rest {
			if !info.members.Contains(e) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, e)
		}
	}
	return result
}

// Query returns the entities holding a component of type T.
func Query[T any](q *Queryer) []Entity {
	return q.queryTypes(reflect.TypeFor[T]())
}

// Query2 returns the entities holding both T1 and T2, in T1's membership
// order.
func Query2[T1, T2 any](q *Queryer) []Entity {
	return q.queryTypes(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// Query3 returns the entities holding T1, T2 and T3, in T1's membership
// order.
func Query3[T1, T2, T3 any](q *Queryer) []Entity {
	return q.queryTypes(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// Query4 returns the entities holding T1 through T4, in T1's membership
// order.
func Query4[T1, T2, T3, T4 any](q *Queryer) []Entity {
	return q.queryTypes(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](), reflect.TypeFor[T4]())
}

// Count returns the number of entities holding a component of type T.
func Count[T any](q *Queryer) int {
	info := componentInfoOf[T](q.world)
	if info == nil {
		return 0
	}
	return info.members.Len()
}

// queryTypes resolves types to IDs without assigning new ones; a type that
// has no ID yet cannot be held by any entity.
func (q *Queryer) queryTypes(types ...reflect.Type) []Entity {
	var buf [4]ComponentID
	ids := buf[:0]
	for _, t := range types {
		id, ok := q.world.registry.lookupComponent(t)
		if !ok {
			return nil
		}
		ids = append(ids, id)
	}
	return q.QueryIDs(ids...)
}
