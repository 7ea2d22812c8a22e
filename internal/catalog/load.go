package catalog

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/policy"
)

// Load builds the catalog from the loot source at path. The source is
// optional: a missing file yields the defaults, and a file that cannot be
// read is logged as a warning and also yields the defaults. Load never
// returns nil.
func Load(ctx context.Context, path string, defaults map[string]policy.Shape) *Catalog {
	logger := ctxlog.FromContext(ctx)

	text, err := readAll(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c := New(defaults)
		logger.Info("Loot source not found, using built-in container defaults.", "path", path, "defaults", c.Len())
		return c
	case err != nil:
		logger.Warn("Could not read loot source, using built-in container defaults.", "path", path, "error", err)
		return New(defaults)
	}

	c := FromText(text, defaults)
	logger.Debug("Loot source scanned.", "path", path, "containers", c.Len())
	return c
}

func readAll(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
