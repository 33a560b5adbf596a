package paginate

import (
	"github.com/pagemill/pagemill/internal/table"
)

// Group is a contiguous run of rows that must stay on one page. Its last
// row is either a subtotal row or the final row of the table.
type Group struct {
	Rows []table.DataRow
}

// Size returns the number of rows in the group.
func (g Group) Size() int {
	return len(g.Rows)
}

// HasSubtotals reports whether any row in the sequence is a subtotal row.
// When none is, the assembler packs row-by-row instead of group-by-group.
func HasSubtotals(rows []table.DataRow) bool {
	for _, r := range rows {
		if r.IsSubtotal() {
			return true
		}
	}
	return false
}

// GroupRows partitions rows into atomic groups. A group closes when a
// subtotal row is appended or the table ends, so subtotal continuity, not
// row count, decides the boundaries.
func GroupRows(rows []table.DataRow) []Group {
	var groups []Group
	var current []table.DataRow

	for i, row := range rows {
		current = append(current, row)
		if row.IsSubtotal() || i == len(rows)-1 {
			groups = append(groups, Group{Rows: current})
			current = nil
		}
	}
	return groups
}
