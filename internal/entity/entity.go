// Package entity parses entity class declarations out of an entity
// definition source. Only vehicle-like classes appended by a mod are kept;
// everything else in the document is ignored.
package entity

import (
	"errors"
	"fmt"
)

// Record is one declared entity class. It is created once while parsing and
// never modified afterwards.
type Record struct {
	Name     string
	Extends  string // parent class, empty when absent
	LootList string // LootListAlive property, empty when absent
	Tags     string
}

// ParseError reports markup that could not be parsed. Line is zero when the
// position is unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "entity source"
	}
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at line %d: %v", where, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
