package bento

// bitmask256 represents a set of up to 256 component IDs. Entity records use
// it to answer Has checks without walking their component handles.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given component ID.
func (m *bitmask256) set(id ComponentID) {
	i := id >> 6 // (id / 64) to find the uint64 index
	o := id & 63 // (id % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(id ComponentID) bool {
	if id >= MaxComponentTypes {
		return false
	}
	i := id >> 6
	o := id & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}
