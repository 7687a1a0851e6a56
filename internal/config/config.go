package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"life-editor/internal/game"
	"life-editor/pkg/life"
)

// Grid size limits.
const (
	MinSize = 10
	MaxSize = 200
)

// MinInterval is the shortest delay between plain text frames.
const MinInterval = time.Millisecond

// Config holds the settings shared by the GUI and terminal frontends.
type Config struct {
	Size     int   `json:"size"`
	CellSize int   `json:"cell_size"`
	TPS      int   `json:"tps"`
	Seed     int64 `json:"seed"`

	InitialSeed string  `json:"initial_seed"`
	Density     float64 `json:"density"`

	Chaos            bool    `json:"chaos"`
	ChaosChance      float64 `json:"chaos_chance"`
	EditWhileRunning bool    `json:"edit_while_running"`

	HUDWidth int           `json:"hud_width"`
	Plain    bool          `json:"plain"`
	Interval time.Duration `json:"interval"`
	LogFile  string        `json:"log_file"`

	File string `json:"-"`
}

// Default returns the standard configuration.
func Default() *Config {
	opts := game.DefaultOptions()
	return &Config{
		Size:        opts.Size,
		CellSize:    10,
		TPS:         10,
		Seed:        opts.Seed,
		InitialSeed: opts.InitialSeed,
		Density:     opts.Density,
		ChaosChance: opts.ChaosChance,
		HUDWidth:    220,
		Interval:    500 * time.Millisecond,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.File, "f", "config", "JSON file with default settings (flags override it)")
	p.Int(&c.Size, "n", "size", "grid cells per side")
	p.Int(&c.CellSize, "c", "cell", "cell size in pixels")
	p.Int(&c.TPS, "t", "tps", "generations per second while running")
	p.Int64(&c.Seed, "s", "seed", "random seed for seeding and chaos mode")
	p.String(&c.InitialSeed, "i", "init", "initial board: "+joinNames())
	p.Float64(&c.Density, "d", "density", "alive probability for random seeding")
	p.Bool(&c.Chaos, "x", "chaos", "start with chaos mode on")
	p.Float64(&c.ChaosChance, "p", "chaos-chance", "per pattern per tick stamp probability in chaos mode")
	p.Bool(&c.EditWhileRunning, "e", "edit-running", "process clicks while running")
	p.Int(&c.HUDWidth, "w", "hud", "HUD panel width in pixels, 0 hides it")
	p.Bool(&c.Plain, "a", "plain", "print the board as plain text instead of the interactive UI")
	p.Duration(&c.Interval, "r", "interval", "delay between plain text frames, for example 500ms")
	p.String(&c.LogFile, "l", "log", "write log output to this file")
}

func joinNames() string {
	return strings.Join(life.SeederNames(), "|")
}

// Parse binds c to a parser named name, parses args, then layers the
// optional JSON file underneath the explicit flags.
func Parse(name, description string, args []string) (*Config, error) {
	c := Default()
	p := flaggy.NewParser(name)
	p.Description = description
	c.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return nil, errors.Wrapf(err, "[Parse] failed to parse arguments: %+v", args)
	}
	if c.File == "" {
		return c, c.Validate()
	}

	fromFile, err := LoadFile(c.File)
	if err != nil {
		return nil, err
	}
	// reparse so explicit flags win over the file
	fromFile.File = c.File
	p = flaggy.NewParser(name)
	fromFile.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return nil, errors.Wrapf(err, "[Parse] failed to parse arguments: %+v", args)
	}
	return fromFile, fromFile.Validate()
}

// LoadFile reads a JSON configuration on top of the defaults.
func LoadFile(filename string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return c, nil
}

// UnmarshalJSON reads interval as a duration string such as "500ms".
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Interval *string `json:"interval"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Interval == nil {
		return nil
	}
	d, err := time.ParseDuration(*aux.Interval)
	if err != nil {
		return errors.Wrapf(err, "interval %q", *aux.Interval)
	}
	c.Interval = d
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Size < MinSize || c.Size > MaxSize:
		return errors.Errorf("size %d outside [%d, %d]", c.Size, MinSize, MaxSize)
	case c.CellSize < 2:
		return errors.Errorf("cell size %d too small", c.CellSize)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v outside [0, 1]", c.Density)
	case c.ChaosChance < 0 || c.ChaosChance > 1:
		return errors.Errorf("chaos chance %v outside [0, 1]", c.ChaosChance)
	case c.HUDWidth < 0:
		return errors.Errorf("hud width %d is negative", c.HUDWidth)
	case c.Interval < MinInterval:
		return errors.Errorf("interval %v below %v", c.Interval, MinInterval)
	}
	if _, ok := life.LookupSeeder(c.InitialSeed); !ok {
		return errors.Errorf("unknown initial seed %q, want one of %s", c.InitialSeed, joinNames())
	}
	return nil
}

// GameOptions converts the configuration into game options.
func (c *Config) GameOptions() game.Options {
	return game.Options{
		Size:             c.Size,
		Seed:             c.Seed,
		InitialSeed:      c.InitialSeed,
		Density:          c.Density,
		Chaos:            c.Chaos,
		ChaosChance:      c.ChaosChance,
		EditWhileRunning: c.EditWhileRunning,
	}
}
