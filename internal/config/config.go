// Package config provides YAML-based configuration loading for the
// Cyclist Collector game: world geometry, physics, spawn cadences and the
// break schedule. Difficulty rules are fixed and live with the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CyclistConfig contains all configuration for the Cyclist Collector game.
type CyclistConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Hearts    HeartConfig    `yaml:"hearts"`
	Breaks    BreakConfig    `yaml:"breaks"`
}

// WorldConfig defines the play field in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground line
}

// PlayerConfig defines the cyclist's size, position and lives.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartLives int     `yaml:"start_lives"`
	MaxLives   int     `yaml:"max_lives"`
}

// PhysicsConfig defines vertical motion and the base scroll speed.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity each tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	BaseSpeed   float64 `yaml:"base_speed"`   // Scroll speed floor, units per tick
}

// ObstacleConfig defines obstacle size and the spacing between them.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinGap int     `yaml:"min_gap"`
	MaxGap int     `yaml:"max_gap"`
}

// CoinConfig defines coin size, cadence and placement.
type CoinConfig struct {
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	SpawnEvery     time.Duration `yaml:"spawn_every"`
	GroundChance   float64       `yaml:"ground_chance"`   // Probability of a ground-level coin
	ElevatedOffset float64       `yaml:"elevated_offset"` // Height above ground for elevated coins
	ElevatedJitter int           `yaml:"elevated_jitter"` // Extra random height, inclusive
}

// HeartConfig defines heart size, cadence and placement.
type HeartConfig struct {
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	SpawnEvery     time.Duration `yaml:"spawn_every"`
	ElevatedOffset float64       `yaml:"elevated_offset"`
	ElevatedJitter int           `yaml:"elevated_jitter"`
}

// BreakConfig defines how often the break quiz interrupts play.
type BreakConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c CyclistConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		errs = append(errs, fmt.Errorf("ground_y %g must be within (0, %g]", c.World.GroundY, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxLives < 1 {
		errs = append(errs, fmt.Errorf("max_lives must be at least 1, got %d", c.Player.MaxLives))
	}
	if c.Player.StartLives < 1 || c.Player.StartLives > c.Player.MaxLives {
		errs = append(errs, fmt.Errorf("start_lives %d must be within [1, %d]", c.Player.StartLives, c.Player.MaxLives))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("jump_impulse must be negative (upward)"))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, errors.New("base_speed must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Obstacles.MinGap <= 0 || c.Obstacles.MinGap > c.Obstacles.MaxGap {
		errs = append(errs, fmt.Errorf("obstacle gap range [%d, %d] is invalid", c.Obstacles.MinGap, c.Obstacles.MaxGap))
	}
	if c.Coins.Width <= 0 || c.Coins.Height <= 0 {
		errs = append(errs, errors.New("coin size must be positive"))
	}
	if c.Coins.SpawnEvery <= 0 {
		errs = append(errs, errors.New("coins.spawn_every must be positive"))
	}
	if c.Coins.GroundChance < 0 || c.Coins.GroundChance > 1 {
		errs = append(errs, fmt.Errorf("coins.ground_chance %g must be within [0, 1]", c.Coins.GroundChance))
	}
	if c.Coins.ElevatedJitter < 0 || c.Hearts.ElevatedJitter < 0 {
		errs = append(errs, errors.New("elevated_jitter must not be negative"))
	}
	if c.Hearts.Width <= 0 || c.Hearts.Height <= 0 {
		errs = append(errs, errors.New("heart size must be positive"))
	}
	if c.Hearts.SpawnEvery <= 0 {
		errs = append(errs, errors.New("hearts.spawn_every must be positive"))
	}
	if c.Breaks.Interval <= 0 {
		errs = append(errs, errors.New("breaks.interval must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// TicksFor converts a duration into a whole number of simulation ticks at
// the given tick rate. The result is never below one tick.
func TicksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(d * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
