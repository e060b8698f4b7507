package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/jnivet/internal/checker"
	"github.com/vk/jnivet/internal/ctxlog"
)

// diagnosticLineWidth is the wrap width for the HCL diagnostic writer.
const diagnosticLineWidth = 100

// Run validates every loaded binding and writes the resulting diagnostics.
// It returns an error when any manifest failed to load or any binding failed
// validation; a failing binding never prevents the remaining bindings from
// being checked.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	diags := a.diags
	if diags.HasErrors() {
		a.logger.Error("Manifest loading failed, skipping validation.")
	} else {
		a.logger.Info("Checking bindings.", "count", len(a.bindings), "workers", cfg.WorkerCount)
		chk := checker.New(a.registry, cfg.WorkerCount)
		diags = append(diags, chk.Run(ctx, a.bindings)...)
	}

	if len(diags) > 0 {
		writer := hcl.NewDiagnosticTextWriter(a.outW, a.loader.Files(), diagnosticLineWidth, false)
		if err := writer.WriteDiagnostics(diags); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	}

	if n := countErrors(diags); n > 0 {
		return fmt.Errorf("validation failed with %d error(s)", n)
	}

	a.logger.Info("All bindings passed.", "count", len(a.bindings))
	a.logger.Debug("App.Run method finished.")
	return nil
}

// countErrors counts error-severity diagnostics; warnings do not fail a run.
func countErrors(diags hcl.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			n++
		}
	}
	return n
}
