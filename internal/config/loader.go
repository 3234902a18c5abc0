package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local config directories.
const FileName = "platformer.yaml"

// Load loads the platformer configuration and validates it.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig, so partial files only override what they name.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyTickRate overrides the tick interval from a ticks-per-second rate.
// Non-positive rates leave the configured interval untouched.
func ApplyTickRate(cfg *Config, tickRate int) {
	if tickRate <= 0 {
		return
	}
	cfg.Loop.TickInterval = time.Second / time.Duration(tickRate)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration describes a runnable world.
// Entity sizes must be resolved (positive) here, before any entity is built.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Loop.TickInterval > 0, "loop.tick_interval must be positive, got %s", c.Loop.TickInterval)
	check(c.Loop.MaxCatchUp > 0, "loop.max_catch_up must be positive, got %d", c.Loop.MaxCatchUp)
	check(c.Loop.StopTimeout >= 0, "loop.stop_timeout must not be negative, got %s", c.Loop.StopTimeout)

	check(c.World.ViewWidth > 0, "world.view_width must be positive, got %d", c.World.ViewWidth)
	check(c.World.Level != "", "world.level must be set")

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Physics.ProjectileGravity >= 0, "physics.projectile_gravity must not be negative, got %g", c.Physics.ProjectileGravity)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.MoveStep >= 0, "player.move_step must not be negative, got %d", c.Player.MoveStep)
	check(c.Player.JumpImpulse >= 0, "player.jump_impulse must not be negative, got %g", c.Player.JumpImpulse)
	check(c.Player.JumpCooldown >= 0, "player.jump_cooldown must not be negative, got %d", c.Player.JumpCooldown)
	check(c.Player.JumpCharges >= 0, "player.jump_charges must not be negative, got %d", c.Player.JumpCharges)
	check(c.Player.AnimationFrames > 0, "player.animation_frames must be positive, got %d", c.Player.AnimationFrames)

	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive, got %dx%d", c.Enemy.Width, c.Enemy.Height)
	check(c.Enemy.DeathTicks > 0, "enemy.death_ticks must be positive, got %d", c.Enemy.DeathTicks)

	check(c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive, got %dx%d", c.Projectile.Width, c.Projectile.Height)
	check(c.Projectile.DespawnMargin >= 0, "projectile.despawn_margin must not be negative, got %d", c.Projectile.DespawnMargin)

	check(c.Obstacle.Width > 0 && c.Obstacle.Height > 0, "obstacle size must be positive, got %dx%d", c.Obstacle.Width, c.Obstacle.Height)

	errs = append(errs, validateZone("input.move_left", c.Input.MoveLeft)...)
	errs = append(errs, validateZone("input.move_right", c.Input.MoveRight)...)
	for i, z := range c.Input.Jump {
		errs = append(errs, validateZone(fmt.Sprintf("input.jump[%d]", i), z)...)
	}
	for i, z := range c.Input.Fire {
		errs = append(errs, validateZone(fmt.Sprintf("input.fire[%d]", i), z)...)
	}

	check(c.Render.UnitsPerCol > 0 && c.Render.UnitsPerRow > 0, "render units per cell must be positive, got %dx%d", c.Render.UnitsPerCol, c.Render.UnitsPerRow)

	return errors.Join(errs...)
}

func validateZone(name string, z Zone) []error {
	var errs []error
	for _, v := range []float64{z.MinX, z.MaxX, z.MinY, z.MaxY} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s fractions must be within [0, 1], got %+v", ErrInvalid, name, z))
			break
		}
	}
	if z.MinX >= z.MaxX || z.MinY >= z.MaxY {
		errs = append(errs, fmt.Errorf("%w: %s is empty or inverted, got %+v", ErrInvalid, name, z))
	}
	return errs
}
