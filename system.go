package bento

import (
	"slices"

	"go.uber.org/zap"
)

// System is a routine the World runs once per pass. It reads the World
// through q and requests structural changes through c; the changes are
// applied after every system of the pass has returned.
type System func(c *Commands, q *Queryer)

// SystemHandle identifies a registered system. Go functions cannot be
// compared, so removal goes through the handle returned at registration.
type SystemHandle uint32

type systemEntry struct {
	run    System
	handle SystemHandle
}

// AddStartUpSystem registers a system that runs once, during StartUp.
func (w *World) AddStartUpSystem(fn System) SystemHandle {
	h := w.register(fn)
	w.startUpSystems = append(w.startUpSystems, systemEntry{run: fn, handle: h})
	w.log.Debug("start-up system added", zap.Uint32("system", uint32(h)))
	return h
}

// AddSystem registers a system that runs on every Update, after the systems
// registered before it.
func (w *World) AddSystem(fn System) SystemHandle {
	h := w.register(fn)
	w.systems = append(w.systems, systemEntry{run: fn, handle: h})
	w.log.Debug("system added", zap.Uint32("system", uint32(h)))
	return h
}

// RemoveSystem unregisters the system identified by h, keeping the order of
// the remaining ones. Removing a handle that is not registered panics.
func (w *World) RemoveSystem(h SystemHandle) {
	if w.running {
		w.failf("system %d removed while a pass is running", h)
	}
	match := func(s systemEntry) bool { return s.handle == h }
	if i := slices.IndexFunc(w.systems, match); i >= 0 {
		w.systems = slices.Delete(w.systems, i, i+1)
	} else if i := slices.IndexFunc(w.startUpSystems, match); i >= 0 {
		w.startUpSystems = slices.Delete(w.startUpSystems, i, i+1)
	} else {
		w.failf("system %d is not registered", h)
	}
	w.log.Debug("system removed", zap.Uint32("system", uint32(h)))
}

// SystemCount returns the number of regular systems.
func (w *World) SystemCount() int { return len(w.systems) }

func (w *World) register(fn System) SystemHandle {
	if fn == nil {
		w.failf("nil system")
	}
	if w.running {
		w.failf("system added while a pass is running")
	}
	w.nextSystem++
	return w.nextSystem
}
