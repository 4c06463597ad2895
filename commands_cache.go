package bento

// commandsCache is the arena of command buffers owned by a World. A pass
// borrows one buffer by slot and hands it back once the buffer is applied,
// so the buffer's slices are reused from tick to tick.
type commandsCache struct {
	buffers []*Commands
	free    []int // slots available for borrowing
}

func (cc *commandsCache) preallocate(w *World, n int) {
	for range n {
		c := &Commands{world: w, slot: len(cc.buffers)}
		cc.buffers = append(cc.buffers, c)
		cc.free = append(cc.free, c.slot)
	}
}

func (cc *commandsCache) borrow(w *World) *Commands {
	if len(cc.free) == 0 {
		cc.preallocate(w, 1)
	}
	n := len(cc.free)
	c := cc.buffers[cc.free[n-1]]
	cc.free = cc.free[:n-1]
	c.active = true
	return c
}

func (cc *commandsCache) release(c *Commands) {
	c.active = false
	cc.free = append(cc.free, c.slot)
}

// reset forgets every buffer. Buffers still referenced by callers stay
// inactive, so using them fails loudly.
func (cc *commandsCache) reset() {
	for _, c := range cc.buffers {
		c.active = false
	}
	cc.buffers = nil
	cc.free = nil
}
