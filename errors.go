package bento

import (
	"fmt"

	"go.uber.org/zap"
)

// failf reports a broken precondition. Every such failure is a bug in the
// calling system code, so the World logs it and panics instead of returning
// an error.
func (w *World) failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.log.Error("precondition violated", zap.String("reason", msg), zap.Uint64("tick", w.tick))
	panic("ecs: " + msg)
}

func componentField(info *componentInfo) zap.Field {
	return zap.Stringer("component", info.typ)
}
