package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.World.InitialCapacity != 1024 || cfg.World.CommandsCache != 1 {
		t.Errorf("unexpected world defaults %+v", cfg.World)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "bento.toml", `
[world]
initial_capacity = 64

[logging]
format = "json"

[demo]
entities = 10
tick_rate = "5ms"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.InitialCapacity != 64 || cfg.Logging.Format != "json" || cfg.Demo.Entities != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Demo.TickRate != 5*time.Millisecond {
		t.Errorf("expected 5ms tick rate, got %v", cfg.Demo.TickRate)
	}
	if cfg.World.CommandsCache != 1 || cfg.Logging.Level != "info" {
		t.Error("defaults lost for keys the file does not set")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bento.yaml", `
world:
  commands_cache: 4
demo:
  ticks: 30
  tick_rate: 0s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.CommandsCache != 4 || cfg.Demo.Ticks != 30 || cfg.Demo.TickRate != 0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.World.InitialCapacity != 1024 {
		t.Error("defaults lost for keys the file does not set")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if err == nil || !strings.Contains(err.Error(), "read config") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "[world\n"))
		if err == nil || !strings.Contains(err.Error(), "parse config") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yml", "logging:\n  format: xml\n"))
		if err == nil || !strings.Contains(err.Error(), "invalid config") {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Negative capacity", func(t *testing.T) {
		_, err := Load(writeFile(t, "neg.toml", "[world]\ninitial_capacity = -1\n"))
		if err == nil {
			t.Error("expected validation error")
		}
	})
}
