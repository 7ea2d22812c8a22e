// Package report renders resolved entities as the fixed-width storage
// capacity listing.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/specialistvlad/lootgridgo/internal/resolver"
)

const (
	ruleWidth        = 70
	summaryRuleWidth = 35
	nameColumn       = 35
	sizeColumn       = 15
	categoryColumn   = 25

	title  = "     VEHICLE MADNESS - VEHICLE STORAGE CAPACITY LIST"
	footer = "Generated by Vehicle Madness Storage Extractor"
)

// widthCondition measures display width independently of the locale, so
// ambiguous-width runes always count as one column.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Category is one group of the summary: every entity sharing a container.
type Category struct {
	ContainerID string
	Count       int
	Slots       int // slots of each member
}

// Sort returns a copy of items ordered by total slots descending, then by
// display name ascending.
func Sort(items []resolver.Resolved) []resolver.Resolved {
	sorted := append([]resolver.Resolved(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalSlots != sorted[j].TotalSlots {
			return sorted[i].TotalSlots > sorted[j].TotalSlots
		}
		return sorted[i].DisplayName < sorted[j].DisplayName
	})
	return sorted
}

// Categories groups sorted items by container id. Groups are ordered by slots
// descending; groups with equal slots keep the order in which they first
// appear in sorted.
func Categories(sorted []resolver.Resolved) []Category {
	index := make(map[string]int)
	var cats []Category
	for _, it := range sorted {
		i, ok := index[it.ContainerID]
		if !ok {
			i = len(cats)
			index[it.ContainerID] = i
			cats = append(cats, Category{ContainerID: it.ContainerID, Slots: it.TotalSlots})
		}
		cats[i].Count++
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Slots > cats[j].Slots
	})
	return cats
}

// Render writes the report for items to w. Only write errors are returned.
func Render(w io.Writer, items []resolver.Resolved) error {
	sorted := Sort(items)
	bw := bufio.NewWriter(w)

	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(bw, heavy)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, heavy)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%s %s %s\n", pad("Vehicle Name", nameColumn), pad("Storage Size", sizeColumn), "Total Slots")
	fmt.Fprintln(bw, light)

	for _, it := range sorted {
		size := fmt.Sprintf("%dx%d", it.Rows, it.Columns)
		fmt.Fprintf(bw, "%s %s %d slots\n", pad(it.DisplayName, nameColumn), pad(size, sizeColumn), it.TotalSlots)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, light)
	fmt.Fprintf(bw, "Total Vehicles: %d\n\n", len(sorted))

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "STORAGE CATEGORY SUMMARY:")
	fmt.Fprintln(bw, strings.Repeat("-", summaryRuleWidth))
	for _, c := range Categories(sorted) {
		fmt.Fprintf(bw, "%s %3d vehicles (%d slots each)\n", pad(c.ContainerID, categoryColumn), c.Count, c.Slots)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, heavy)
	fmt.Fprintln(bw, footer)

	// bufio keeps the first write error and reports it here.
	return bw.Flush()
}

// pad left-aligns s in a column of the given display width. Longer values
// are never truncated.
func pad(s string, width int) string {
	return widthCondition.FillRight(s, width)
}
