package paginate

import (
	"github.com/pagemill/pagemill/internal/table"
)

// Assembler bin-packs a table's rows into pages honoring a row budget and
// then places the grand total. Pages leave the assembler with dense 1-based
// page numbers; TotalPages is filled in by the stamper afterwards.
type Assembler struct {
	headers     []table.HeaderRow
	metadata    map[string]any
	maxDataRows int
}

// NewAssembler creates an assembler for one pagination request.
func NewAssembler(headers []table.HeaderRow, metadata map[string]any, maxDataRows int) *Assembler {
	if maxDataRows < 1 {
		maxDataRows = 1
	}
	return &Assembler{
		headers:     headers,
		metadata:    metadata,
		maxDataRows: maxDataRows,
	}
}

// Assemble produces the ordered page list for a normalized model. The
// concatenation of all pages' rows equals the model's row sequence exactly;
// the only page allowed to carry no rows is one manufactured solely for the
// grand total.
func (a *Assembler) Assemble(m *table.TableModel) []table.Page {
	if m == nil {
		return []table.Page{}
	}

	var pages []table.Page
	if HasSubtotals(m.Rows) {
		pages = a.assembleGrouped(GroupRows(m.Rows))
	} else {
		pages = a.assembleUngrouped(m.Rows)
	}

	pages = a.placeGrandTotal(pages, m.GrandTotal, m.HeaderRowCount())

	for i := range pages {
		pages[i].PageNumber = i + 1
	}
	return pages
}

// assembleGrouped packs whole groups. A group that alone exceeds the budget
// is still placed on a single page: that page may visually overflow, which
// is preferred over fragmenting a subtotal block.
func (a *Assembler) assembleGrouped(groups []Group) []table.Page {
	var pages []table.Page
	current := a.newPage()
	rowCount := 0

	for _, g := range groups {
		if rowCount+g.Size() >= a.maxDataRows && rowCount > 0 {
			pages = append(pages, current)
			current = a.newPage()
			rowCount = 0
		}
		current.Rows = append(current.Rows, g.Rows...)
		rowCount += g.Size()
	}
	if rowCount > 0 {
		pages = append(pages, current)
	}
	return pages
}

// assembleUngrouped packs row by row; a page closes as soon as it reaches
// the budget.
func (a *Assembler) assembleUngrouped(rows []table.DataRow) []table.Page {
	var pages []table.Page
	current := a.newPage()
	rowCount := 0

	for _, row := range rows {
		if rowCount >= a.maxDataRows {
			pages = append(pages, current)
			current = a.newPage()
			rowCount = 0
		}
		current.Rows = append(current.Rows, row)
		rowCount++
	}
	if rowCount > 0 {
		pages = append(pages, current)
	}
	return pages
}

// placeGrandTotal attaches the grand total to the last page when it fits the
// same budget used for data rows, and otherwise allocates a fresh page whose
// sole content is the grand total. A table with a grand total but no data
// rows also gets a manufactured page, so the total is never dropped.
func (a *Assembler) placeGrandTotal(pages []table.Page, gt *table.GrandTotalRow, headerRowCount int) []table.Page {
	if gt == nil {
		return pages
	}

	if len(pages) > 0 {
		last := &pages[len(pages)-1]
		rowsOnLastPage := headerRowCount + len(last.Rows) + 1
		if rowsOnLastPage <= headerRowCount+a.maxDataRows {
			last.GrandTotal = gt
			return pages
		}
	}

	overflow := a.newPage()
	overflow.GrandTotal = gt
	return append(pages, overflow)
}

func (a *Assembler) newPage() table.Page {
	return table.Page{
		Headers:  table.CopyHeaders(a.headers),
		Metadata: a.metadata,
	}
}
