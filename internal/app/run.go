package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/lootgridgo/internal/catalog"
	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/entity"
	"github.com/specialistvlad/lootgridgo/internal/report"
	"github.com/specialistvlad/lootgridgo/internal/resolver"
)

// Run executes the extraction and writes the report to the configured path.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.logger.Info("Parsing Vehicle Madness configuration files...")

	resolved, err := a.Extract(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(a.config.OutputPath, resolved); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Info("Output saved to: "+a.config.OutputPath, "path", a.config.OutputPath)
	a.logger.Info("Done!")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Extract builds both catalogs and resolves every entity, without writing
// anything. Entities are returned in source order.
func (a *App) Extract(ctx context.Context) ([]resolver.Resolved, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cat := catalog.Load(ctx, a.config.LootPath, a.policy.Containers)
	a.logger.Info(fmt.Sprintf("Found %d loot container definitions", cat.Len()), "path", a.config.LootPath)

	records, err := entity.Load(ctx, a.config.EntitiesPath, a.policy.EntityPrefix)
	if err != nil {
		if a.config.Strict {
			return nil, fmt.Errorf("failed to build entity catalog: %w", err)
		}
		reason := "unreadable"
		if entity.IsParseError(err) {
			reason = "malformed"
		}
		a.logger.Error("Entity source unusable, continuing with zero entities.", "path", a.config.EntitiesPath, "reason", reason, "error", err)
		records = nil
	}
	a.logger.Info(fmt.Sprintf("Found %d vehicle definitions", len(records)), "path", a.config.EntitiesPath)

	resolved, notes := resolver.Resolve(ctx, records, cat, a.policy)
	if len(notes) > 0 {
		a.logger.Debug("Resolution used fallbacks.", "notes", len(notes))
	}
	return resolved, nil
}

// writeReport renders items into the file at path, replacing it. The file is
// closed on every path and a close failure is reported like a write failure.
func writeReport(path string, items []resolver.Resolved) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return report.Render(f, items)
}
