package bento

// resourceTable stores at most one live instance per resource type, indexed
// by ResourceID. Values are always *T for the resource's type T.
type resourceTable struct {
	items []any
	count int
}

func (r *resourceTable) has(id ResourceID) bool {
	return int(id) < len(r.items) && r.items[id] != nil
}

func (r *resourceTable) get(id ResourceID) any {
	if !r.has(id) {
		return nil
	}
	return r.items[id]
}

// install stores value under id. The caller checks that no instance is live.
func (r *resourceTable) install(id ResourceID, value any) {
	if int(id) >= len(r.items) {
		r.items = extendSlice(r.items, int(id)+1-len(r.items))
	}
	r.items[id] = value
	r.count++
}

// remove releases and drops the instance under id, reporting whether one was
// live.
func (r *resourceTable) remove(id ResourceID) bool {
	if !r.has(id) {
		return false
	}
	if rel, ok := r.items[id].(Releaser); ok {
		rel.Release()
	}
	r.items[id] = nil
	r.count--
	return true
}

// clear releases every live instance.
func (r *resourceTable) clear() {
	for id := range r.items {
		r.remove(ResourceID(id))
	}
	r.items = r.items[:0]
	r.count = 0
}

func (r *resourceTable) len() int { return r.count }
