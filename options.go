package bento

import "go.uber.org/zap"

const (
	defaultInitialCapacity = 1024
	defaultCommandsCache   = 1
)

type worldOptions struct {
	logger          *zap.Logger
	registry        *TypeRegistry
	initialCapacity int
	commandsCache   int
}

// Option configures a World at construction.
type Option func(*worldOptions)

// WithLogger sets the logger the World reports through. A nil logger keeps
// the default no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *worldOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithInitialCapacity pre-sizes the entity table for n entities.
func WithInitialCapacity(n int) Option {
	return func(o *worldOptions) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithCommandsCache pre-allocates n command buffers.
func WithCommandsCache(n int) Option {
	return func(o *worldOptions) {
		if n >= 0 {
			o.commandsCache = n
		}
	}
}

// WithRegistry makes the World resolve type IDs through r instead of a
// fresh registry of its own.
func WithRegistry(r *TypeRegistry) Option {
	return func(o *worldOptions) {
		if r != nil {
			o.registry = r
		}
	}
}
