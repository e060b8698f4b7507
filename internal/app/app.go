package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/jnivet/internal/ctxlog"
	"github.com/vk/jnivet/internal/manifest"
	"github.com/vk/jnivet/internal/nativetype"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *nativetype.Registry
	loader   *manifest.Loader
	bindings []*manifest.Binding
	diags    hcl.Diagnostics // accumulated while loading manifests
}

// New is the constructor for the main application. It configures an isolated
// logger, constructs the read-only native type registry, and loads every
// binding manifest reachable from the configured path. Load problems are
// kept as diagnostics and reported by Run alongside validation results.
func New(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	loader := manifest.NewLoader()
	bindings, diags := loader.Load(ctx, cfg.ManifestPath)
	logger.Debug("Binding manifests loaded.", "bindings", len(bindings), "diagnostics", len(diags))

	// The registry is constructed once and only ever read afterwards, so the
	// checker's workers can share it without synchronization.
	registry := nativetype.NewRegistry()
	logger.Debug("Native type registry constructed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry,
		loader:   loader,
		bindings: bindings,
		diags:    diags,
	}
}

// Bindings returns the loaded binding declarations. This is primarily for testing.
func (a *App) Bindings() []*manifest.Binding {
	return a.bindings
}
