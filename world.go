package bento

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World owns every component pool, membership index, entity record and
// resource, plus the registered systems. Hosts call StartUp once and Update
// once per tick.
//
// A World is not safe for concurrent use. Systems run one after another and
// structural changes are applied only between passes, so no locking happens
// inside the World.
type World struct {
	log        *zap.Logger
	registry   *TypeRegistry
	entities   map[Entity]*entityRecord
	queryer    Queryer
	components []*componentInfo // indexed by ComponentID, nil until first spawn
	records    []*entityRecord  // recycled records
	resources  resourceTable
	commands   commandsCache

	startUpSystems []systemEntry
	systems        []systemEntry

	tick       uint64
	id         uuid.UUID
	buffers    int // command buffers preallocated at construction and after Shutdown
	nextEntity Entity
	nextSystem SystemHandle
	running    bool
}

// NewWorld creates an empty World.
//
// Parameters:
//   - opts: Optional settings such as WithLogger or WithInitialCapacity.
//
// Returns:
//   - The newly created World.
func NewWorld(opts ...Option) *World {
	o := worldOptions{
		logger:          zap.NewNop(),
		initialCapacity: defaultInitialCapacity,
		commandsCache:   defaultCommandsCache,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = NewTypeRegistry()
	}
	w := &World{
		id:         uuid.New(),
		registry:   o.registry,
		entities:   make(map[Entity]*entityRecord, o.initialCapacity),
		nextEntity: 1,
		buffers:    o.commandsCache,
	}
	w.log = o.logger.Named("bento").With(zap.Stringer("world", w.id))
	w.queryer = Queryer{world: w}
	w.commands.preallocate(w, w.buffers)
	return w
}

// ID returns the World's instance identifier.
func (w *World) ID() uuid.UUID { return w.id }

// Registry returns the type registry the World resolves IDs through.
func (w *World) Registry() *TypeRegistry { return w.registry }

// Queryer returns the World's read view. It reflects the state as of the
// last applied pass.
func (w *World) Queryer() *Queryer { return &w.queryer }

// Tick returns the number of completed Update calls.
func (w *World) Tick() uint64 { return w.tick }

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.entities) }

// StartUp runs every start-up system once against one command buffer, then
// applies that buffer. Changes requested by start-up systems are visible to
// each other only after StartUp returns, exactly like within Update.
func (w *World) StartUp() {
	w.log.Debug("start-up", zap.Int("systems", len(w.startUpSystems)))
	w.runPass(w.startUpSystems)
}

// Update runs every regular system once, all sharing one command buffer and
// the World's Queryer, then applies the buffer in the order: destroy
// entities, destroy resources, spawn entities, create resources.
func (w *World) Update() {
	w.runPass(w.systems)
	w.tick++
}

func (w *World) runPass(systems []systemEntry) {
	if w.running {
		w.failf("pass started from inside a running system")
	}
	c := w.commands.borrow(w)
	w.running = true
	for _, s := range systems {
		s.run(c, &w.queryer)
	}
	w.running = false
	if c.Len() > 0 {
		w.log.Debug("applying commands",
			zap.Uint64("tick", w.tick),
			zap.Int("destroy_entities", len(c.destroyEntities)),
			zap.Int("destroy_resources", len(c.destroyResources)),
			zap.Int("spawn_entities", len(c.spawns)),
			zap.Int("create_resources", len(c.createResources)),
		)
	}
	c.Execute()
	w.commands.release(c)
}

// Shutdown discards every entity, component and resource and clears both
// system lists, releasing instances that implement Releaser. Type IDs and
// the entity counter survive, so handles from before Shutdown never alias
// entities spawned after it.
func (w *World) Shutdown() {
	if w.running {
		w.failf("shutdown from inside a running system")
	}
	for _, info := range w.components {
		if info == nil {
			continue
		}
		info.storage.DestroyAll()
		info.members.Clear()
	}
	clear(w.components)
	w.components = w.components[:0]
	clear(w.entities)
	w.records = nil
	w.resources.clear()
	w.startUpSystems = nil
	w.systems = nil
	w.commands.reset()
	w.commands.preallocate(w, w.buffers)
	w.tick = 0
	w.log.Info("world shut down")
}

// newEntity hands out the next entity ID.
func (w *World) newEntity() Entity {
	if w.nextEntity == NullEntity {
		w.failf("entity id space exhausted")
	}
	e := w.nextEntity
	w.nextEntity++
	return e
}

// placeEntity makes a spawned entity visible: it indexes every component
// handle and stores the entity's record.
func (w *World) placeEntity(e Entity, refs []componentRef) {
	if _, ok := w.entities[e]; ok {
		w.failf("entity %d spawned twice", e)
	}
	rec := w.newRecord()
	for _, ref := range refs {
		info := w.componentInfo(ref.id)
		if info == nil {
			w.failf("component %d has no storage", ref.id)
		}
		info.members.Insert(e)
		rec.mask.set(ref.id)
		rec.refs = append(rec.refs, ref)
	}
	w.entities[e] = rec
}

// destroyEntity returns every component of e to its pool and forgets e.
func (w *World) destroyEntity(e Entity) {
	rec, ok := w.entities[e]
	if !ok {
		w.failf("destroy of entity %d which does not exist", e)
	}
	for _, ref := range rec.refs {
		info := w.components[ref.id]
		info.storage.Destroy(ref.slot)
		info.members.Remove(e)
	}
	delete(w.entities, e)
	rec.reset()
	w.records = append(w.records, rec)
}

func (w *World) newRecord() *entityRecord {
	if n := len(w.records); n > 0 {
		rec := w.records[n-1]
		w.records = w.records[:n-1]
		return rec
	}
	return &entityRecord{}
}

// installResource makes a resource created by a command buffer live.
func (w *World) installResource(id ResourceID, value any) {
	if w.resources.has(id) {
		w.failf("resource %s already set", w.registry.ResourceType(id))
	}
	w.resources.install(id, value)
}

// ComponentStats describes the storage of one component type.
type ComponentStats struct {
	Type      string
	ID        ComponentID
	Live      int // instances owned by entities
	Cached    int // destroyed instances kept for reuse
	Allocated int // live + cached
	Members   int // entities in the membership index
}

// Stats is a snapshot of a World's storage.
type Stats struct {
	Components     []ComponentStats
	Tick           uint64
	Entities       int
	Resources      int
	CommandBuffers int
}

// Stats returns a snapshot of the World's storage counters.
func (w *World) Stats() Stats {
	s := Stats{
		Tick:           w.tick,
		Entities:       len(w.entities),
		Resources:      w.resources.len(),
		CommandBuffers: len(w.commands.buffers),
	}
	for _, info := range w.components {
		if info == nil {
			continue
		}
		s.Components = append(s.Components, ComponentStats{
			Type:      info.typ.String(),
			ID:        info.id,
			Live:      info.storage.Len(),
			Cached:    info.storage.Cached(),
			Allocated: info.storage.Allocated(),
			Members:   info.members.Len(),
		})
	}
	return s
}
