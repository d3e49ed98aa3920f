// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig holds a World's tunable parameters. Every field is
// optional: zero values are replaced by spec defaults in withDefaults.
// Despite the legacy field name, Gravity is a damping coefficient, not a
// downward acceleration; see the design notes in world.go.
type WorldConfig struct {
	Gravity            float64 `yaml:"gravity"`
	TimeStep           float64 `yaml:"timeStep"`
	MaxSubSteps        int     `yaml:"maxSubSteps"`
	SpatialCellSize    float64 `yaml:"spatialCellSize"`
	PositionIterations int     `yaml:"positionIterations"`
	VelocityIterations int     `yaml:"velocityIterations"`
}

// DefaultWorldConfig returns the spec-mandated defaults.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:            1,
		TimeStep:           1.0 / 60.0,
		MaxSubSteps:        8,
		SpatialCellSize:    100,
		PositionIterations: 4,
		VelocityIterations: 6,
	}
}

// withDefaults fills any zero-valued field with its default.
func (c WorldConfig) withDefaults() WorldConfig {
	d := DefaultWorldConfig()
	if c.TimeStep == 0 {
		c.TimeStep = d.TimeStep
	}
	if c.MaxSubSteps == 0 {
		c.MaxSubSteps = d.MaxSubSteps
	}
	if c.SpatialCellSize == 0 {
		c.SpatialCellSize = d.SpatialCellSize
	}
	if c.PositionIterations == 0 {
		c.PositionIterations = d.PositionIterations
	}
	if c.VelocityIterations == 0 {
		c.VelocityIterations = d.VelocityIterations
	}
	// Gravity legitimately defaults to 1, but a caller that wants it at
	// exactly zero would be indistinguishable from "unset" here; this
	// is an accepted limitation of zero-value defaulting, matching the
	// "all optional" contract rather than requiring pointer fields.
	if c.Gravity == 0 {
		c.Gravity = d.Gravity
	}
	return c
}

// LoadWorldConfigFile reads a yaml-encoded WorldConfig from path,
// applying defaults to any field the file leaves unset.
func LoadWorldConfigFile(path string) (WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldConfig{}, err
	}
	return LoadWorldConfig(data)
}

// LoadWorldConfig parses a yaml-encoded WorldConfig from data.
func LoadWorldConfig(data []byte) (WorldConfig, error) {
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, err
	}
	return cfg.withDefaults(), nil
}
