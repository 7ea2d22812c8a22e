package settings

import "github.com/hashicorp/hcl/v2"

// renameSchema picks the rename blocks out of a settings body.
var renameSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "rename", LabelNames: []string{"from"}},
	},
}

// checkDuplicateRenames returns an error diagnostic for every rename block
// whose label was already used earlier in the same body. Two substitutions
// of the same text would make the second one a silent no-op.
func checkDuplicateRenames(body hcl.Body) hcl.Diagnostics {
	content, _, diags := body.PartialContent(renameSchema)
	if diags.HasErrors() {
		return diags
	}

	seen := make(map[string]*hcl.Block)
	for _, block := range content.Blocks {
		from := block.Labels[0]
		if first, ok := seen[from]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"rename\" block",
				Detail:   "Only one rename block for \"" + from + "\" is allowed; the first is at " + first.DefRange.String() + ".",
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[from] = block
	}
	return diags
}
