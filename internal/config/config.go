// Package config provides YAML-based configuration loading for the platformer.
package config

import "time"

// Config contains all tunable parameters of the simulation and its host.
type Config struct {
	Loop       LoopConfig       `yaml:"loop"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Input      InputConfig      `yaml:"input"`
	Render     RenderConfig     `yaml:"render"`
	Log        LogConfig        `yaml:"log"`
}

// LoopConfig defines the simulation loop timing.
type LoopConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Nominal fixed timestep
	MaxCatchUp   int           `yaml:"max_catch_up"`  // Max ticks run per wake before dropping backlog
	StopTimeout  time.Duration `yaml:"stop_timeout"`  // How long Stop waits for the in-flight cycle
}

// WorldConfig defines the world container parameters.
type WorldConfig struct {
	Ground    int    `yaml:"ground"`     // Y coordinate of the top of walkable terrain
	ViewWidth int    `yaml:"view_width"` // Camera window width in world units
	Level     string `yaml:"level"`      // Registered level ID
}

// PhysicsConfig defines the shared acceleration constants (units/tick²).
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	ProjectileGravity float64 `yaml:"projectile_gravity"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	X               int     `yaml:"x"`
	Y               int     `yaml:"y"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	MoveStep        int     `yaml:"move_step"`        // Horizontal step per tick while a move zone is held
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Upward velocity applied per charge
	JumpCooldown    int     `yaml:"jump_cooldown"`    // Grounded ticks before the charge pool refills
	JumpCharges     int     `yaml:"jump_charges"`     // Maximum charges in the pool
	AnimationFrames int     `yaml:"animation_frames"` // Walk cycle length
	FireFront       float64 `yaml:"fire_front"`       // Spawn x offset (fraction of width) when facing right
	FireBack        float64 `yaml:"fire_back"`        // Spawn x offset (fraction of width) behind x when facing left
	FireHeight      float64 `yaml:"fire_height"`      // Spawn y offset (fraction of height)
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Step       int `yaml:"step"`        // Patrol step per tick
	DeathTicks int `yaml:"death_ticks"` // Ticks between hit and removal
}

// ProjectileConfig defines player-launched projectiles.
type ProjectileConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`          // Horizontal speed per tick
	DespawnMargin int `yaml:"despawn_margin"` // Distance outside the camera window before removal
}

// ObstacleConfig defines static obstacles.
type ObstacleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Zone is a screen region expressed as fractions of the screen size.
type Zone struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// InputConfig defines the touch zones. Jump and fire have a left and a right zone each.
type InputConfig struct {
	MoveLeft  Zone          `yaml:"move_left"`
	MoveRight Zone          `yaml:"move_right"`
	Jump      []Zone        `yaml:"jump"`
	Fire      []Zone        `yaml:"fire"`
	KeyHold   time.Duration `yaml:"key_hold"` // How long a key press holds its synthetic touch
}

// RenderConfig defines the world-to-terminal projection.
type RenderConfig struct {
	UnitsPerCol int  `yaml:"units_per_col"` // World units per terminal column
	UnitsPerRow int  `yaml:"units_per_row"` // World units per terminal row
	ShowZones   bool `yaml:"show_zones"`    // Draw the touch zones as on-screen controls
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
