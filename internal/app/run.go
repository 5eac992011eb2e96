package app

import (
	"context"
	"fmt"

	"github.com/vk/funcattr/internal/ctxlog"
	"github.com/vk/funcattr/internal/marker"
	"github.com/vk/funcattr/internal/report"
)

// Run executes the main application logic: register every function
// definition, apply its markers in declaration order, then render the
// resulting attribute tables to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for _, def := range a.config.Functions {
		ref := a.store.RegisterFunction(def.Module, def.Name)
		a.logger.Debug("Registered function.", "module", def.Module, "name", def.Name, "ref", ref)

		for _, raw := range def.Markers {
			m, err := marker.Parse(raw)
			if err != nil {
				return fmt.Errorf("function %s.%s: %w", def.Module, def.Name, err)
			}

			handled, err := a.store.Apply(ctx, def.Module, ref, m.Name, m.ArgText)
			if err != nil {
				return fmt.Errorf("function %s.%s: %w", def.Module, def.Name, err)
			}
			if !handled {
				a.logger.Warn("Marker has no declared attribute handler.",
					"module", def.Module, "function", def.Name, "marker", m.Name)
			}
		}
	}
	a.logger.Info("All function definitions processed.", "count", len(a.config.Functions))

	snap := report.Collect(a.store)
	if err := report.Render(a.outW, a.output, snap); err != nil {
		return fmt.Errorf("failed to render attribute report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
