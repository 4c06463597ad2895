package bento

import "iter"

// sparsePageSize is the number of entity slots covered by one sparse page.
// A page is allocated on its first Insert and dropped again once its last
// entity is removed, so only ranges holding live members take a page.
const sparsePageSize = 1024

// SparseSet is the membership index of one component type. A paged sparse
// array maps an entity to its position in a dense slice of entities, giving
// O(1) Insert, Remove and Contains and a packed slice to iterate.
//
// The dense order is not insertion order once removals happen (removal swaps
// the last entity into the hole), but it only changes on Insert/Remove.
type SparseSet struct {
	pages [][]uint32 // per page: dense position + 1, 0 when absent
	used  []int      // per page: number of members
	dense []Entity
}

func sparseIndex(e Entity) (int, int) {
	return int(e / sparsePageSize), int(e % sparsePageSize)
}

// Insert adds e to the set. Inserting a present entity does nothing.
func (s *SparseSet) Insert(e Entity) {
	if s.Contains(e) {
		return
	}
	p, o := sparseIndex(e)
	if p >= len(s.pages) {
		s.pages = extendSlice(s.pages, p+1-len(s.pages))
		s.used = extendSlice(s.used, p+1-len(s.used))
	}
	if s.pages[p] == nil {
		s.pages[p] = make([]uint32, sparsePageSize)
	}
	s.dense = append(s.dense, e)
	s.pages[p][o] = uint32(len(s.dense))
	s.used[p]++
}

// Remove deletes e from the set. Removing an absent entity does nothing.
func (s *SparseSet) Remove(e Entity) {
	if !s.Contains(e) {
		return
	}
	p, o := sparseIndex(e)
	pos := s.pages[p][o] - 1
	last := uint32(len(s.dense) - 1)
	if pos < last {
		moved := s.dense[last]
		s.dense[pos] = moved
		mp, mo := sparseIndex(moved)
		s.pages[mp][mo] = pos + 1
	}
	s.dense = s.dense[:last]
	s.pages[p][o] = 0
	s.used[p]--
	if s.used[p] == 0 {
		s.pages[p] = nil
	}
}

// Contains reports whether e is in the set.
func (s *SparseSet) Contains(e Entity) bool {
	p, o := sparseIndex(e)
	if p >= len(s.pages) || s.pages[p] == nil {
		return false
	}
	return s.pages[p][o] != 0
}

// Len returns the number of entities in the set.
func (s *SparseSet) Len() int { return len(s.dense) }

// Entities returns the dense entity slice.
// Note: the slice is owned by the set and is only valid until the next
// Insert or Remove. Copy it if it has to outlive that.
func (s *SparseSet) Entities() []Entity {
	return s.dense
}

// All returns a sequence over the entities currently in the set. The
// sequence can be ranged over any number of times; the set must not be
// modified while a range over it is in progress.
func (s *SparseSet) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range s.dense {
			if !yield(e) {
				return
			}
		}
	}
}

// Clear removes every entity and drops every page.
func (s *SparseSet) Clear() {
	clear(s.pages)
	clear(s.used)
	s.dense = s.dense[:0]
}
