package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/policy"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// containersType is what the containers attribute must convert to:
// an object or map of [rows, columns] pairs.
var containersType = cty.Map(cty.List(cty.Number))

// isExprDefined reports whether an optional attribute was written in the
// file. The decoder fills omitted optional expressions with zero-width
// placeholders, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	logger.Debug("Checking if settings attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// decodeContainers evaluates the containers attribute into shapes.
func decodeContainers(ctx context.Context, expr hcl.Expression) (map[string]policy.Shape, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	logger.Debug("Preparing to decode containers.",
		"source_type", val.Type().FriendlyName(),
		"target_type", containersType.FriendlyName(),
	)
	converted, err := convert.Convert(val, containersType)
	if err != nil {
		return nil, fmt.Errorf("containers: cannot convert %s to %s: %w", val.Type().FriendlyName(), containersType.FriendlyName(), err)
	}

	var raw map[string][]int
	if err := gocty.FromCtyValue(converted, &raw); err != nil {
		return nil, fmt.Errorf("containers: %w", err)
	}

	out := make(map[string]policy.Shape, len(raw))
	for id, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("containers: %q must be [rows, columns], got %d values", id, len(pair))
		}
		if pair[0] <= 0 || pair[1] <= 0 {
			return nil, fmt.Errorf("containers: %q must have positive rows and columns, got %dx%d", id, pair[0], pair[1])
		}
		out[id] = policy.Shape{Rows: pair[0], Columns: pair[1]}
	}
	return out, nil
}
