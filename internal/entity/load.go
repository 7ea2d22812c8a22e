package entity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
)

// Load reads and parses the entity source at path.
//
// A missing or empty source is not fatal: it is logged and yields an empty
// list. Unparsable markup returns a *ParseError carrying path and line, and
// an unreadable file returns the wrapped read error.
func Load(ctx context.Context, path, prefix string) ([]Record, error) {
	logger := ctxlog.FromContext(ctx)

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Error("Entity source not found.", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entity source %s: %w", path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		logger.Info("Entity source is empty, no entities to resolve.", "path", path)
		return nil, nil
	}

	records, err := Parse(bytes.NewReader(content), prefix)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	logger.Debug("Entity source parsed.", "path", path, "records", len(records), "prefix", prefix)
	return records, nil
}
