package settings

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level construct a settings file may contain.
// Unknown attributes or blocks are rejected by the decoder.
type fileRoot struct {
	EntityPrefix *string        `hcl:"entity_prefix,optional"`
	Containers   hcl.Expression `hcl:"containers,optional"`
	Fallback     *fallbackBlock `hcl:"fallback,block"`
	Renames      []*renameBlock `hcl:"rename,block"`
}

// fallbackBlock overrides the fallback container id and shape.
type fallbackBlock struct {
	Container *string `hcl:"container,optional"`
	Rows      *int    `hcl:"rows,optional"`
	Columns   *int    `hcl:"columns,optional"`
}

// renameBlock is one ordered display-name substitution.
type renameBlock struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to"`
}
