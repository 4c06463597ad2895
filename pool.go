package bento

import (
	"fmt"
	"reflect"
)

// PoolChunkSize is the number of instances held by one pool chunk. Chunks
// are never moved, so a *T obtained from a pool stays valid while the pool
// grows.
const PoolChunkSize = 128

// Releaser is implemented by component and resource types that hold
// something needing explicit cleanup. Release runs exactly once per
// instance: when its entity is destroyed or the World shuts down for
// components, on removal or shutdown for resources.
type Releaser interface {
	Release()
}

// componentStorage is the type-erased view of a Pool the World keeps per
// component type.
type componentStorage interface {
	Destroy(slot uint32)
	DestroyAll()
	Len() int
	Cached() int
	Allocated() int
}

// Pool owns every instance of one component type. Destroyed slots are
// cached and handed out again by Create, so once a pool has reached its
// high-water mark entity churn no longer allocates.
type Pool[T any] struct {
	chunks []*[PoolChunkSize]T
	live   []bool   // indexed by slot
	cache  []uint32 // destroyed slots, reused LIFO
	size   uint32   // slots ever allocated
	count  int      // live slots
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Create returns a live slot holding the zero value of T. A cached slot is
// reused when one is available; otherwise a new slot is allocated.
func (p *Pool[T]) Create() uint32 {
	var slot uint32
	if n := len(p.cache); n > 0 {
		slot = p.cache[n-1]
		p.cache = p.cache[:n-1]
	} else {
		slot = p.size
		if int(slot/PoolChunkSize) == len(p.chunks) {
			p.chunks = append(p.chunks, new([PoolChunkSize]T))
		}
		p.live = append(p.live, false)
		p.size++
	}
	p.live[slot] = true
	p.count++
	return slot
}

// Destroy releases the instance in a live slot, resets it to the zero value
// and moves the slot into the cache. Destroying a slot that is not live in
// this pool panics.
func (p *Pool[T]) Destroy(slot uint32) {
	if !p.Live(slot) {
		panic(fmt.Sprintf("ecs: slot %d is not live in pool of %s", slot, reflect.TypeFor[T]()))
	}
	release(p.at(slot))
	p.live[slot] = false
	p.cache = append(p.cache, slot)
	p.count--
}

// DestroyAll releases every live instance and drops the pool's storage.
// Cached slots were released when they were destroyed. It is meant for
// teardown only.
func (p *Pool[T]) DestroyAll() {
	for slot := range p.size {
		if p.live[slot] {
			release(p.at(slot))
		}
	}
	p.chunks = nil
	p.live = nil
	p.cache = nil
	p.size = 0
	p.count = 0
}

// At returns the instance stored in a live slot. It panics if the slot is
// not live.
func (p *Pool[T]) At(slot uint32) *T {
	if !p.Live(slot) {
		panic(fmt.Sprintf("ecs: slot %d is not live in pool of %s", slot, reflect.TypeFor[T]()))
	}
	return p.at(slot)
}

// Live reports whether slot currently holds a live instance.
func (p *Pool[T]) Live(slot uint32) bool {
	return slot < p.size && p.live[slot]
}

// Len returns the number of live instances.
func (p *Pool[T]) Len() int { return p.count }

// Cached returns the number of destroyed instances waiting for reuse.
func (p *Pool[T]) Cached() int { return len(p.cache) }

// Allocated returns the number of instances the pool has ever allocated,
// live and cached together.
func (p *Pool[T]) Allocated() int { return int(p.size) }

func (p *Pool[T]) at(slot uint32) *T {
	return &p.chunks[slot/PoolChunkSize][slot%PoolChunkSize]
}

// release runs Release on the instance if it has one and leaves the zero
// value behind.
func release[T any](v *T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
	var zero T
	*v = zero
}
