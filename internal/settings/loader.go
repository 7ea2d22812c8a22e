// Package settings loads optional HCL files that override the built-in
// extraction policy: entity prefix, container shapes, fallbacks and display
// renames.
package settings

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/fsutil"
	"github.com/specialistvlad/lootgridgo/internal/policy"
)

// Load overlays the settings found at path onto base and returns the result.
// path may be a single .hcl file or a directory searched recursively for .hcl
// files, applied in lexical order. An empty path returns base unchanged. base
// itself is never modified.
func Load(ctx context.Context, path string, base policy.Policy) (policy.Policy, error) {
	logger := ctxlog.FromContext(ctx)
	pol := base.Clone()
	if path == "" {
		return pol, nil
	}

	files, err := settingsFiles(path)
	if err != nil {
		return base, err
	}
	logger.Debug("Discovered settings files.", "path", path, "count", len(files))

	parser := hclparse.NewParser()
	var renames []policy.Rename
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
		}

		if diags := checkDuplicateRenames(hclFile.Body); diags.HasErrors() {
			return base, fmt.Errorf("invalid settings file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
		}

		if err := apply(ctx, &pol, &root); err != nil {
			return base, fmt.Errorf("invalid settings file %s: %w", file, err)
		}
		for _, r := range root.Renames {
			renames = append(renames, policy.Rename{From: r.From, To: r.To})
		}
	}
	if len(renames) > 0 {
		pol.Renames = renames
	}

	logger.Debug("Settings applied.",
		"entity_prefix", pol.EntityPrefix,
		"containers", len(pol.Containers),
		"fallback_container", pol.FallbackContainer,
		"renames", len(pol.Renames),
	)
	return pol, nil
}

// apply overlays one decoded file onto pol.
func apply(ctx context.Context, pol *policy.Policy, root *fileRoot) error {
	if root.EntityPrefix != nil {
		pol.EntityPrefix = *root.EntityPrefix
	}

	if isExprDefined(ctx, root.Containers, "containers") {
		shapes, err := decodeContainers(ctx, root.Containers)
		if err != nil {
			return err
		}
		for id, s := range shapes {
			pol.Containers[id] = s
		}
	}

	if fb := root.Fallback; fb != nil {
		if fb.Container != nil {
			if *fb.Container == "" {
				return fmt.Errorf("fallback: container must not be empty")
			}
			pol.FallbackContainer = *fb.Container
		}
		if fb.Rows != nil {
			pol.FallbackShape.Rows = *fb.Rows
		}
		if fb.Columns != nil {
			pol.FallbackShape.Columns = *fb.Columns
		}
		if pol.FallbackShape.Rows <= 0 || pol.FallbackShape.Columns <= 0 {
			return fmt.Errorf("fallback: rows and columns must be positive, got %dx%d", pol.FallbackShape.Rows, pol.FallbackShape.Columns)
		}
	}

	for _, r := range root.Renames {
		if r.From == "" {
			return fmt.Errorf("rename: the label must not be empty")
		}
	}
	return nil
}

// settingsFiles resolves path into the list of files to load.
func settingsFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing settings path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("error searching settings path %s: %w", path, err)
	}
	return files, nil
}
