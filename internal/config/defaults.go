package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/cyclist.yaml
var defaultCyclistYAML []byte

// DefaultCyclistConfig returns the default Cyclist Collector configuration.
func DefaultCyclistConfig() CyclistConfig {
	return CyclistConfig{
		World: WorldConfig{
			Width:   800,
			Height:  400,
			GroundY: 300,
		},
		Player: PlayerConfig{
			X:          100,
			Width:      50,
			Height:     60,
			StartLives: 3,
			MaxLives:   5,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -15,
			BaseSpeed:   5,
		},
		Obstacles: ObstacleConfig{
			Width:  20,
			Height: 50,
			MinGap: 300,
			MaxGap: 500,
		},
		Coins: CoinConfig{
			Width:          25,
			Height:         25,
			SpawnEvery:     2 * time.Second, // 120 ticks at 60fps
			GroundChance:   0.5,
			ElevatedOffset: 100,
			ElevatedJitter: 50,
		},
		Hearts: HeartConfig{
			Width:          30,
			Height:         30,
			SpawnEvery:     10 * time.Second, // 600 ticks at 60fps
			ElevatedOffset: 80,
			ElevatedJitter: 40,
		},
		Breaks: BreakConfig{
			Interval: 60 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCyclistYAML
}
