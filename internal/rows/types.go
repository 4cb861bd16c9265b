package rows

import (
	"fmt"
	"strings"
)

// Cell is a single (family, qualifier, timestamp) -> value entry of a row.
type Cell struct {
	Family    string   `json:"family"`
	Qualifier string   `json:"qualifier"`
	Timestamp int64    `json:"timestamp"` // microseconds since the epoch
	Value     []byte   `json:"value"`
	Labels    []string `json:"labels,omitempty"`
}

// FlatRow exposes every cell of a row as one flat list instead of nesting by family:
//
// Example:
//
//	FlatRow{
//	  Key: "row1",
//	  Cells: []Cell{
//	    {Family: "c", Qualifier: "name", Value: []byte("item")},
//	    {Family: "d", Qualifier: "1", Value: []byte{0x01}},
//	  },
//	}
//
// Cells of a family keep the order the server returned them in: qualifier ascending,
// newest timestamp first.
type FlatRow struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}

// FirstInFamily returns the first cell belonging to family.
func (r FlatRow) FirstInFamily(family string) (Cell, bool) {
	for _, c := range r.Cells {
		if c.Family == family {
			return c, true
		}
	}
	return Cell{}, false
}

// String renders the row for log output, values as quoted byte strings.
func (r FlatRow) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FlatRow{key=%q, cells=[", r.Key)
	for i, c := range r.Cells {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s@%d=%q", c.Family, c.Qualifier, c.Timestamp, c.Value)
		if len(c.Labels) > 0 {
			fmt.Fprintf(&b, " labels=%v", c.Labels)
		}
	}
	b.WriteString("]}")
	return b.String()
}
