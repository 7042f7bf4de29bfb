package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/framegraph/internal/config"
	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/declare"
	"github.com/vk/framegraph/internal/rendergraph"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	decl   *rendergraph.Declaration
	flags  rendergraph.Flags
}

// NewApp is the constructor for the main application. It loads the
// declaration files and translates them into a render-graph declaration.
// A declaration that cannot be loaded is a fatal startup error and panics.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, converter, err := loader.Load(ctx, appConfig.GraphPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"resources", len(cfgModel.Resources), "nodes", len(cfgModel.Nodes))

	decl, flags, err := declare.Build(ctx, cfgModel, converter)
	if err != nil {
		panic(fmt.Errorf("failed to build declaration: %w", err))
	}
	flags |= appConfig.Flags()
	logger.Debug("Declaration ready.", "flags", uint32(flags))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		decl:   decl,
		flags:  flags,
	}
}

// Declaration returns the translated declaration. This is primarily for testing.
func (a *App) Declaration() *rendergraph.Declaration {
	return a.decl
}

// Flags returns the merged render-graph flags.
func (a *App) Flags() rendergraph.Flags {
	return a.flags
}
