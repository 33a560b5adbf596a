package paginate

import (
	"log"

	"github.com/pagemill/pagemill/internal/geometry"
	"github.com/pagemill/pagemill/internal/table"
)

// Service orchestrates the pagination pipeline: normalize, budget, group,
// assemble, stamp. It holds no mutable state across calls, so a single
// Service may be used concurrently for independent tables.
type Service struct {
	geometry   geometry.Config
	normalizer *table.Normalizer
	debugMode  bool
}

// NewService creates a pagination service bound to one geometry contract.
func NewService(cfg geometry.Config, debugMode bool) *Service {
	return &Service{
		geometry:   cfg,
		normalizer: table.NewNormalizer(),
		debugMode:  debugMode,
	}
}

// Geometry returns the layout contract the service paginates against.
func (s *Service) Geometry() geometry.Config {
	return s.geometry
}

// PaginateTable runs the full pipeline for one table model. An absent model
// yields an empty page list, not an error: the caller treats it as "nothing
// to paginate". Identical input and geometry always produce an identical
// page list.
func (s *Service) PaginateTable(req PaginateTableRequest) (*PaginateTableResult, error) {
	size := geometry.ParsePageSize(req.PageSize)
	orientation := geometry.ParseOrientation(req.Orientation)

	result := &PaginateTableResult{
		Pages:       []table.Page{},
		RowsPerPage: []int{},
		PageSize:    string(size),
		Orientation: string(orientation),
	}

	model := s.normalizer.Normalize(req.Model)
	if model == nil {
		return result, nil
	}

	headerRowCount := model.HeaderRowCount()
	maxDataRows := ComputeMaxDataRows(size, orientation, headerRowCount, s.geometry)

	assembler := NewAssembler(model.Headers, model.Metadata, maxDataRows)
	pages := Stamp(assembler.Assemble(model))

	result.Pages = pages
	result.TotalPages = len(pages)
	result.MaxDataRows = maxDataRows
	result.RowsPerPage = rowsPerPage(pages)

	if s.debugMode {
		log.Printf("paginated table: %d rows, %d header rows, budget %d rows/page, %d pages (%s %s)",
			len(model.Rows), headerRowCount, maxDataRows, len(pages), size, orientation)
	}
	return result, nil
}

// ComputePageBudget exposes the budget calculation with its full breakdown,
// for debugging the renderer contract.
func (s *Service) ComputePageBudget(req PageBudgetRequest) (*PageBudgetResult, error) {
	size := geometry.ParsePageSize(req.PageSize)
	orientation := geometry.ParseOrientation(req.Orientation)

	return &PageBudgetResult{
		PageSize:       string(size),
		Orientation:    string(orientation),
		HeaderRowCount: max(req.HeaderRowCount, 1),
		Breakdown:      ComputeBudget(size, orientation, req.HeaderRowCount, s.geometry),
	}, nil
}

// TableStats reports row, subtotal and group counts for a model without
// paginating it.
func (s *Service) TableStats(req TableStatsRequest) (*TableStatsResult, error) {
	model := s.normalizer.Normalize(req.Model)
	if model == nil {
		return &TableStatsResult{}, nil
	}

	subtotals := 0
	for _, r := range model.Rows {
		if r.IsSubtotal() {
			subtotals++
		}
	}

	return &TableStatsResult{
		RowCount:       len(model.Rows),
		SubtotalCount:  subtotals,
		GroupCount:     len(GroupRows(model.Rows)),
		HeaderRowCount: model.HeaderRowCount(),
		HasGrandTotal:  model.GrandTotal != nil,
	}, nil
}

func rowsPerPage(pages []table.Page) []int {
	counts := make([]int, len(pages))
	for i, p := range pages {
		counts[i] = len(p.Rows)
	}
	return counts
}
