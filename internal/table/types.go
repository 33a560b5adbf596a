package table

// RowType discriminates ordinary data rows from subtotal rows.
type RowType string

const (
	RowTypeData     RowType = "data"
	RowTypeSubtotal RowType = "subtotal"
)

// Cell represents a single table cell. Header cells carry span and kind
// metadata; data cells usually only carry text.
type Cell struct {
	Text     string `json:"text"`
	ColSpan  int    `json:"colspan,omitempty"`
	RowSpan  int    `json:"rowspan,omitempty"`
	Kind     string `json:"kind,omitempty"` // e.g. "hierarchy", "values", "metrics"
	ColumnID string `json:"column_id,omitempty"`
	IsHeader bool   `json:"is_header,omitempty"`
}

// HeaderRow is one row of the column header block. The header block is
// immutable for the whole table and repeated verbatim on every output page.
type HeaderRow struct {
	Cells []Cell `json:"cells"`
}

// DataRow is one body row of the table. Row order is significant and is
// preserved exactly through pagination.
type DataRow struct {
	Cells         []Cell  `json:"cells"`
	Type          RowType `json:"type"`
	SubtotalLevel int     `json:"subtotal_level,omitempty"`
}

// IsSubtotal reports whether the row closes a subtotal block.
func (r DataRow) IsSubtotal() bool {
	return r.Type == RowTypeSubtotal
}

// GrandTotalRow is the single summary row logically positioned after all
// data. At most one per table.
type GrandTotalRow struct {
	Cells []Cell `json:"cells"`
}

// TableModel is the normalized representation of a hierarchical report table
// handed to the pagination engine by a content extractor.
type TableModel struct {
	Headers    []HeaderRow    `json:"headers"`
	Rows       []DataRow      `json:"rows"`
	GrandTotal *GrandTotalRow `json:"grand_total,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"` // opaque passthrough
}

// HeaderRowCount returns the number of header rows for budget purposes.
// A table without headers still reserves space for one implicit header row.
func (m *TableModel) HeaderRowCount() int {
	if m == nil || len(m.Headers) == 0 {
		return 1
	}
	return len(m.Headers)
}

// Page is one unit of paginated output: repeated headers, a contiguous row
// slice, an optional grand total, and page numbering. TotalPages is zero
// until the stamper has run.
type Page struct {
	Headers    []HeaderRow    `json:"headers"`
	Rows       []DataRow      `json:"rows"`
	PageNumber int            `json:"page_number"`
	TotalPages int            `json:"total_pages"`
	GrandTotal *GrandTotalRow `json:"grand_total,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// CopyHeaders returns an independent copy of a header block so that pages
// never alias the source model's header cells.
func CopyHeaders(headers []HeaderRow) []HeaderRow {
	if headers == nil {
		return nil
	}
	out := make([]HeaderRow, len(headers))
	for i, row := range headers {
		cells := make([]Cell, len(row.Cells))
		copy(cells, row.Cells)
		out[i] = HeaderRow{Cells: cells}
	}
	return out
}
