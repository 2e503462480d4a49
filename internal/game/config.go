package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// envPrefix prefixes every configuration variable.
const envPrefix = "DUNGEONCRAWL_"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Dungeon dimensions, fixed for the whole session.
	Width  int
	Height int

	// AITick is the interval between enemy AI updates, independent of input.
	AITick time.Duration
	// AnimFrame is the duration of one swing animation frame.
	AnimFrame time.Duration

	// MaxGenerationAttempts caps dungeon regeneration; 0 means unbounded.
	MaxGenerationAttempts uint
	// MaxItemsPerRoom is the exclusive upper bound of item markers per room.
	MaxItemsPerRoom int

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool
	// LogFile receives diagnostic logs. Empty discards them.
	LogFile      string
	LogVerbosity int
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Width:                 world.DefaultWidth,
		Height:                world.DefaultHeight,
		AITick:                time.Second,
		AnimFrame:             50 * time.Millisecond,
		MaxGenerationAttempts: world.DefaultMaxAttempts,
		MaxItemsPerRoom:       world.DefaultMaxItemsPerRoom,
		Telemetry:             true,
	}
}

// LoadConfig reads DUNGEONCRAWL_* environment variables on top of the
// defaults. Call godotenv.Load first to pick up a .env file.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	get := func(name string, parse func(string) error) {
		raw, ok := lookup(envPrefix + name)
		if !ok || raw == "" {
			return
		}
		if err := parse(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s%s=%q: %w", envPrefix, name, raw, err))
		}
	}
	parseInt := func(dst *int) func(string) error {
		return func(s string) error {
			v, err := strconv.Atoi(s)
			*dst = v
			return err
		}
	}
	parseDuration := func(dst *time.Duration) func(string) error {
		return func(s string) error {
			v, err := time.ParseDuration(s)
			*dst = v
			return err
		}
	}

	get("SEED", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		cfg.Seed = v
		return err
	})
	get("WIDTH", parseInt(&cfg.Width))
	get("HEIGHT", parseInt(&cfg.Height))
	get("AI_TICK", parseDuration(&cfg.AITick))
	get("ANIM_FRAME", parseDuration(&cfg.AnimFrame))
	get("MAX_GEN_ATTEMPTS", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		cfg.MaxGenerationAttempts = uint(v)
		return err
	})
	get("MAX_ITEMS_PER_ROOM", parseInt(&cfg.MaxItemsPerRoom))
	get("TELEMETRY", func(s string) error {
		v, err := strconv.ParseBool(s)
		cfg.Telemetry = v
		return err
	})
	get("LOG_FILE", func(s string) error {
		cfg.LogFile = s
		return nil
	})
	get("LOG_VERBOSITY", parseInt(&cfg.LogVerbosity))

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration can run a session.
func (c Config) Validate() error {
	var errs []error
	if c.Width < world.MinWidth || c.Height < world.MinHeight {
		errs = append(errs, fmt.Errorf("dungeon size %dx%d is below the minimum %dx%d",
			c.Width, c.Height, world.MinWidth, world.MinHeight))
	}
	if c.AITick <= 0 {
		errs = append(errs, fmt.Errorf("AI tick %v must be positive", c.AITick))
	}
	if c.AnimFrame <= 0 {
		errs = append(errs, fmt.Errorf("animation frame %v must be positive", c.AnimFrame))
	}
	if c.MaxItemsPerRoom < 0 {
		errs = append(errs, fmt.Errorf("max items per room %d must not be negative", c.MaxItemsPerRoom))
	}
	return errors.Join(errs...)
}
