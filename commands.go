package bento

import "reflect"

type spawnRequest struct {
	refs   []componentRef
	entity Entity
}

type resourceRequest struct {
	value any // *T
	id    ResourceID
}

// Commands collects structural changes requested during a pass. Nothing it
// records touches the World's entity, index or resource tables until Execute
// runs, so queries made in the same pass keep seeing the pre-pass state.
//
// Two things do happen immediately: entity IDs are allocated, and component
// and resource values are constructed (components directly in their pools).
type Commands struct {
	world            *World
	destroyEntities  []Entity
	destroyResources []ResourceID
	spawns           []spawnRequest
	createResources  []resourceRequest
	slot             int // position in the World's commands cache
	active           bool
}

// Spawn requests a new entity holding the given component values.
//
// Example:
//
//	c.Spawn(bento.With(Name{"b"}), bento.With(ID{1}))
func (c *Commands) Spawn(values ...Value) *Commands {
	c.SpawnAndReturn(values...)
	return c
}

// SpawnAndReturn requests a new entity holding the given component values
// and returns its ID. The ID is valid right away, but the entity only
// becomes visible to queries once the buffer is applied.
//
// Each component type may appear at most once per call.
//
// Parameters:
//   - values: Component values built with With.
//
// Returns:
//   - The Entity that will hold the components.
func (c *Commands) SpawnAndReturn(values ...Value) Entity {
	c.checkActive()
	w := c.world
	e := w.newEntity()
	req := c.nextSpawn(e)
	for _, v := range values {
		ref := v.place(w)
		for _, prev := range req.refs {
			if prev.id == ref.id {
				w.failf("component %s supplied twice for entity %d", w.registry.ComponentType(ref.id), e)
			}
		}
		req.refs = append(req.refs, ref)
	}
	return e
}

// Destroy requests the destruction of e. The entity must still exist when
// the buffer is applied.
func (c *Commands) Destroy(e Entity) *Commands {
	c.checkActive()
	c.destroyEntities = append(c.destroyEntities, e)
	return c
}

// SetResource requests that v become the live resource of type T. It panics
// if a T is already live, even one whose removal is pending in this buffer,
// or if another T is already pending creation in this buffer.
//
// The returned pointer is the instance that gets installed, so it can be
// filled in further before the buffer is applied.
func SetResource[T any](c *Commands, v T) *T {
	c.checkActive()
	w := c.world
	id := ResourceIDFor[T](w.registry)
	if w.resources.has(id) {
		w.failf("resource %s already set", reflect.TypeFor[T]())
	}
	for _, req := range c.createResources {
		if req.id == id {
			w.failf("resource %s already pending creation", reflect.TypeFor[T]())
		}
	}
	p := new(T)
	*p = v
	c.createResources = append(c.createResources, resourceRequest{id: id, value: p})
	return p
}

// RemoveResource requests the removal of the live resource of type T.
// Nothing happens at apply time if no T is live.
func RemoveResource[T any](c *Commands) *Commands {
	c.checkActive()
	c.destroyResources = append(c.destroyResources, ResourceIDFor[T](c.world.registry))
	return c
}

// Execute applies every recorded request in a fixed order: destroy
// entities, destroy resources, spawn entities, create resources. The buffer
// is empty afterwards and ready for reuse.
//
// The World calls Execute once every system of a pass has returned.
// Calling it from inside a system panics.
func (c *Commands) Execute() {
	w := c.world
	if w.running {
		w.failf("command buffer executed inside a running pass")
	}
	for _, e := range c.destroyEntities {
		w.destroyEntity(e)
	}
	c.destroyEntities = c.destroyEntities[:0]

	for _, id := range c.destroyResources {
		w.resources.remove(id)
	}
	c.destroyResources = c.destroyResources[:0]

	for i := range c.spawns {
		req := &c.spawns[i]
		w.placeEntity(req.entity, req.refs)
	}
	c.spawns = c.spawns[:0]

	for _, req := range c.createResources {
		w.installResource(req.id, req.value)
	}
	clear(c.createResources)
	c.createResources = c.createResources[:0]
}

// Len returns the number of requests waiting to be applied.
func (c *Commands) Len() int {
	return len(c.destroyEntities) + len(c.destroyResources) + len(c.spawns) + len(c.createResources)
}

// nextSpawn appends a spawn request, reusing the handle slice of a request
// left over from an earlier pass when there is one.
func (c *Commands) nextSpawn(e Entity) *spawnRequest {
	n := len(c.spawns)
	if n < cap(c.spawns) {
		c.spawns = c.spawns[:n+1]
	} else {
		c.spawns = append(c.spawns, spawnRequest{})
	}
	req := &c.spawns[n]
	req.entity = e
	req.refs = req.refs[:0]
	return req
}

func (c *Commands) checkActive() {
	if !c.active {
		c.world.failf("command buffer used outside of its pass")
	}
}
