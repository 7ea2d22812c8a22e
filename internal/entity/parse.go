package entity

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const (
	appendElement   = "append"
	classElement    = "entity_class"
	propertyElement = "property"

	lootListProperty = "LootListAlive"
	tagsProperty     = "Tags"
)

var (
	errNoRoot        = errors.New("no element found")
	errJunkAfterRoot = errors.New("junk after document element")
	errTextOutside   = errors.New("text outside the document element")
)

// frame is one open element on the parse stack.
type frame struct {
	name  string
	group int // index into groups when name is append, otherwise -1
	class *pendingClass
}

type pendingClass struct {
	rec     Record
	hasLoot bool
	hasTags bool
}

// Parse reads an entity definition document and returns the records of every
// entity_class that is a direct child of an append element below the
// document root and whose name starts with prefix.
//
// Records are grouped by append element in document order of the append
// start tags, then by position inside that append. The document must be
// well-formed with exactly one root element; anything else aborts the parse
// with a *ParseError.
func Parse(r io.Reader, prefix string) ([]Record, error) {
	dec := xml.NewDecoder(r)

	var (
		stack    []frame
		groups   [][]Record
		rootSeen bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newParseError(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if rootSeen {
					return nil, newParseError(dec, errJunkAfterRoot)
				}
				rootSeen = true
			}
			f := frame{name: t.Name.Local, group: -1}
			parent := top(stack)

			switch {
			case f.name == appendElement && len(stack) > 0:
				f.group = len(groups)
				groups = append(groups, nil)
			case f.name == classElement && parent != nil && parent.group >= 0:
				f.class = &pendingClass{rec: Record{
					Name:    attr(t, "name"),
					Extends: attr(t, "extends"),
				}}
			case f.name == propertyElement && parent != nil && parent.class != nil:
				parent.class.takeProperty(t)
			}
			stack = append(stack, f)

		case xml.EndElement:
			if len(stack) == 0 {
				// The decoder rejects unbalanced tags before this point.
				continue
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if closed.class == nil || !strings.HasPrefix(closed.class.rec.Name, prefix) || closed.class.rec.Name == "" {
				continue
			}
			owner := top(stack)
			groups[owner.group] = append(groups[owner.group], closed.class.rec)

		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				if rootSeen {
					return nil, newParseError(dec, errJunkAfterRoot)
				}
				return nil, newParseError(dec, errTextOutside)
			}
		}
	}
	if !rootSeen {
		return nil, newParseError(dec, errNoRoot)
	}

	var out []Record
	for _, g := range groups {
		out = append(out, g...)
	}
	return out, nil
}

// takeProperty records the first LootListAlive and the first Tags property.
func (c *pendingClass) takeProperty(t xml.StartElement) {
	switch attr(t, "name") {
	case lootListProperty:
		if !c.hasLoot {
			c.rec.LootList = attr(t, "value")
			c.hasLoot = true
		}
	case tagsProperty:
		if !c.hasTags {
			c.rec.Tags = attr(t, "value")
			c.hasTags = true
		}
	}
}

func top(stack []frame) *frame {
	if len(stack) == 0 {
		return nil
	}
	return &stack[len(stack)-1]
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func newParseError(dec *xml.Decoder, err error) *ParseError {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Line: syn.Line, Err: err}
	}
	line, _ := dec.InputPos()
	return &ParseError{Line: line, Err: err}
}
