// bento-demo runs a small movement/lifetime simulation on a bento World.
//
// Configuration is read from config/bento.toml, or from the file named by
// BENTO_CONFIG (TOML or YAML).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edwinsyarief/bento"
	"github.com/edwinsyarief/bento/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/bento.toml"
	if p := os.Getenv("BENTO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	w := bento.NewWorld(
		bento.WithLogger(log),
		bento.WithInitialCapacity(cfg.World.InitialCapacity),
		bento.WithCommandsCache(cfg.World.CommandsCache),
	)
	defer w.Shutdown()

	sim := newSimulation(cfg.Demo, time.Now().UnixNano())
	sim.install(w)
	w.StartUp()
	log.Info("simulation started",
		zap.Int("entities", w.Len()),
		zap.Int("ticks", cfg.Demo.Ticks),
		zap.Duration("tick_rate", cfg.Demo.TickRate),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tick <-chan time.Time
	if cfg.Demo.TickRate > 0 {
		ticker := time.NewTicker(cfg.Demo.TickRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; i < cfg.Demo.Ticks; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				log.Info("interrupted", zap.Uint64("tick", w.Tick()))
				return nil
			case <-tick:
			}
		}
		w.Update()
		if w.Tick()%60 == 0 {
			logStats(log, w.Stats())
		}
	}

	census := bento.GetResource[Census](w.Queryer())
	log.Info("simulation finished",
		zap.Uint64("tick", w.Tick()),
		zap.Int("entities", w.Len()),
		zap.Int("spawned", census.Spawned),
		zap.Int("despawned", census.Despawned),
	)
	return nil
}

func logStats(log *zap.Logger, s bento.Stats) {
	fields := []zap.Field{
		zap.Uint64("tick", s.Tick),
		zap.Int("entities", s.Entities),
		zap.Int("resources", s.Resources),
	}
	for _, c := range s.Components {
		fields = append(fields, zap.Dict(c.Type,
			zap.Int("live", c.Live),
			zap.Int("cached", c.Cached),
			zap.Int("allocated", c.Allocated),
		))
	}
	log.Info("world stats", fields...)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
