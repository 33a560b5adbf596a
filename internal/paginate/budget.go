package paginate

import (
	"math"

	"github.com/pagemill/pagemill/internal/geometry"
)

// BudgetBreakdown itemizes the vertical pixel budget for one page so the
// renderer contract can be inspected when pages overflow or underflow.
type BudgetBreakdown struct {
	PageHeight      float64 `json:"page_height"`
	VerticalMargins float64 `json:"vertical_margins"`
	PagePadding     float64 `json:"page_padding"`
	PageHeaderBlock float64 `json:"page_header_block"`
	HeaderHeight    float64 `json:"header_height"` // headerRowCount * RowHeight
	SafetyBuffer    float64 `json:"safety_buffer"`
	Available       float64 `json:"available"`
	MaxDataRows     int     `json:"max_data_rows"`
}

// ComputeBudget computes the full budget breakdown for a page geometry.
// Pure and side-effect free; invalid size or orientation values degrade to
// Letter/portrait instead of failing, and a headerRowCount below 1 is
// treated as the single implicit header row.
func ComputeBudget(size geometry.PageSize, orientation geometry.Orientation, headerRowCount int, cfg geometry.Config) BudgetBreakdown {
	if headerRowCount < 1 {
		headerRowCount = 1
	}

	b := BudgetBreakdown{
		PageHeight:      geometry.PageHeight(size, orientation),
		VerticalMargins: cfg.VerticalMargins(),
		PagePadding:     cfg.PagePadding,
		PageHeaderBlock: cfg.PageHeaderBlock,
		HeaderHeight:    float64(headerRowCount) * cfg.RowHeight,
		SafetyBuffer:    cfg.SafetyBuffer,
	}
	b.Available = b.PageHeight - b.VerticalMargins - b.PagePadding - b.PageHeaderBlock - b.HeaderHeight - b.SafetyBuffer

	// The trailing -1 reserves headroom so the last row's bottom border is
	// never clipped by the page edge.
	rows := int(math.Floor(b.Available/cfg.RowHeight)) - 1
	if rows < 1 {
		rows = 1
	}
	b.MaxDataRows = rows
	return b
}

// ComputeMaxDataRows returns the maximum number of data rows that fit on one
// page. Always at least 1.
func ComputeMaxDataRows(size geometry.PageSize, orientation geometry.Orientation, headerRowCount int, cfg geometry.Config) int {
	return ComputeBudget(size, orientation, headerRowCount, cfg).MaxDataRows
}
