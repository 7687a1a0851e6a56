package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Size != 80 || c.InitialSeed != "empty" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"tiny grid":     func(c *Config) { c.Size = 5 },
		"huge grid":     func(c *Config) { c.Size = 201 },
		"zero tps":      func(c *Config) { c.TPS = 0 },
		"density":       func(c *Config) { c.Density = 1.5 },
		"chaos chance":  func(c *Config) { c.ChaosChance = -0.1 },
		"unknown seed":  func(c *Config) { c.InitialSeed = "soup" },
		"cell size":     func(c *Config) { c.CellSize = 1 },
		"negative hud":  func(c *Config) { c.HUDWidth = -1 },
		"interval":      func(c *Config) { c.Interval = -time.Second },
		"busy interval": func(c *Config) { c.Interval = 500 * time.Nanosecond },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `{"size": 40, "initial_seed": "glider-gun", "chaos": true}`)
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 40 || c.InitialSeed != "glider-gun" || !c.Chaos {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.TPS != Default().TPS {
		t.Fatal("fields missing from the file should keep defaults")
	}
}

func TestLoadFileInterval(t *testing.T) {
	c, err := LoadFile(writeFile(t, `{"interval": "250ms"}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Interval != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", c.Interval)
	}
	if c.Size != Default().Size {
		t.Fatal("fields missing from the file should keep defaults")
	}

	if _, err := LoadFile(writeFile(t, `{"interval": 500}`)); err == nil {
		t.Fatal("a bare number is ambiguous and should be rejected")
	}
	if _, err := LoadFile(writeFile(t, `{"interval": "soon"}`)); err == nil {
		t.Fatal("expected error for an unparsable interval")
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	_, err = LoadFile(writeFile(t, "{not json"))
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal") {
		t.Fatalf("expected wrapped unmarshal error, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse("life", "test", []string{"--size", "120", "--init", "random", "--chaos"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 120 || c.InitialSeed != "random" || !c.Chaos {
		t.Fatalf("flags not applied: %+v", c)
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, `{"size": 40, "tps": 4}`)
	c, err := Parse("life", "test", []string{"--config", path, "--size", "60"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 60 {
		t.Fatalf("flag should override file size, got %d", c.Size)
	}
	if c.TPS != 4 {
		t.Fatalf("file tps should survive, got %d", c.TPS)
	}
	if c.File != path {
		t.Fatalf("config path lost: %q", c.File)
	}
}

func TestParseValidates(t *testing.T) {
	if _, err := Parse("life", "test", []string{"--size", "3"}); err == nil {
		t.Fatal("expected validation error from Parse")
	}
}

func TestGameOptions(t *testing.T) {
	c := Default()
	c.EditWhileRunning = true
	c.Seed = 9
	opts := c.GameOptions()
	if !opts.EditWhileRunning || opts.Seed != 9 || opts.Size != c.Size {
		t.Fatalf("options not carried over: %+v", opts)
	}
}
