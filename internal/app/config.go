package app

import (
	"errors"
	"fmt"

	"github.com/vk/framegraph/internal/rendergraph"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPaths []string // hcl files or directories

	LogFormat string
	LogLevel  string

	NoLifetimeAnalysis bool
	MemorySchedule     bool
	NoDebugPrint       bool

	InspectURL string
	Frames     int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.GraphPaths) == 0 {
		return nil, errors.New("GraphPaths is a required configuration field and cannot be empty")
	}
	if cfg.Frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	if cfg.Frames == 0 {
		cfg.Frames = 1
	}
	return &cfg, nil
}

// Flags returns the render-graph flags the command line asks for. They are
// merged with the flags of the graph block.
func (c *Config) Flags() rendergraph.Flags {
	var f rendergraph.Flags
	if c.NoLifetimeAnalysis {
		f |= rendergraph.FlagNoLifetimeAnalysis
	}
	if c.MemorySchedule {
		f |= rendergraph.FlagEnableMemorySchedule
	}
	if c.NoDebugPrint {
		f |= rendergraph.FlagNoDebugPrint
	}
	return f
}
