package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Loop: LoopConfig{
			TickInterval: 10 * time.Millisecond,
			MaxCatchUp:   5,
			StopTimeout:  2 * time.Second,
		},
		World: WorldConfig{
			Ground:    1000,
			ViewWidth: 1600,
			Level:     "classic",
		},
		Physics: PhysicsConfig{
			Gravity:           1.4,
			ProjectileGravity: 2.0,
		},
		Player: PlayerConfig{
			X:               500,
			Y:               200,
			Width:           60,
			Height:          95,
			MoveStep:        18,
			JumpImpulse:     23,
			JumpCooldown:    4,
			JumpCharges:     9,
			AnimationFrames: 5,
			FireFront:       0.75,
			FireBack:        0.1,
			FireHeight:      0.2,
		},
		Enemy: EnemyConfig{
			Width:      48,
			Height:     57,
			Step:       10,
			DeathTicks: 8,
		},
		Projectile: ProjectileConfig{
			Width:         38,
			Height:        38,
			Speed:         25,
			DespawnMargin: 800,
		},
		Obstacle: ObstacleConfig{
			Width:  110,
			Height: 400,
		},
		Input: InputConfig{
			MoveLeft:  Zone{MinX: 0.0, MaxX: 0.22, MinY: 0.5, MaxY: 1.0},
			MoveRight: Zone{MinX: 0.78, MaxX: 1.0, MinY: 0.5, MaxY: 1.0},
			Jump: []Zone{
				{MinX: 0.0, MaxX: 0.11, MinY: 0.0, MaxY: 0.5},
				{MinX: 0.89, MaxX: 1.0, MinY: 0.0, MaxY: 0.5},
			},
			Fire: []Zone{
				{MinX: 0.11, MaxX: 0.22, MinY: 0.0, MaxY: 0.5},
				{MinX: 0.78, MaxX: 0.89, MinY: 0.0, MaxY: 0.5},
			},
			KeyHold: 120 * time.Millisecond,
		},
		Render: RenderConfig{
			UnitsPerCol: 20,
			UnitsPerRow: 46,
			ShowZones:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
