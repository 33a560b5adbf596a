package paginate

import (
	"github.com/pagemill/pagemill/internal/table"
)

// Request Types

// PaginateTableRequest represents a request to paginate a table model.
type PaginateTableRequest struct {
	Model       *table.TableModel `json:"model"`
	PageSize    string            `json:"page_size"`
	Orientation string            `json:"orientation"`
}

// PageBudgetRequest represents a request to compute a page's row budget.
type PageBudgetRequest struct {
	PageSize       string `json:"page_size"`
	Orientation    string `json:"orientation"`
	HeaderRowCount int    `json:"header_row_count"`
}

// TableStatsRequest represents a request for model statistics without
// paginating.
type TableStatsRequest struct {
	Model *table.TableModel `json:"model"`
}

// Response Types

// PaginateTableResult represents the result of a pagination run.
type PaginateTableResult struct {
	Pages       []table.Page `json:"pages"`
	TotalPages  int          `json:"total_pages"`
	MaxDataRows int          `json:"max_data_rows"`
	RowsPerPage []int        `json:"rows_per_page"`
	PageSize    string       `json:"page_size"`
	Orientation string       `json:"orientation"`
}

// PageBudgetResult represents the result of a budget computation.
type PageBudgetResult struct {
	PageSize       string          `json:"page_size"`
	Orientation    string          `json:"orientation"`
	HeaderRowCount int             `json:"header_row_count"`
	Breakdown      BudgetBreakdown `json:"breakdown"`
}

// TableStatsResult represents statistics about a table model.
type TableStatsResult struct {
	RowCount       int  `json:"row_count"`
	SubtotalCount  int  `json:"subtotal_count"`
	GroupCount     int  `json:"group_count"`
	HeaderRowCount int  `json:"header_row_count"`
	HasGrandTotal  bool `json:"has_grand_total"`
}
