package paginate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemill/pagemill/internal/geometry"
	"github.com/pagemill/pagemill/internal/table"
)

func TestServicePaginateTableLetterPortrait(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	req := PaginateTableRequest{
		Model:       &table.TableModel{Headers: testHeaders(), Rows: dataRows(100)},
		PageSize:    "Letter",
		Orientation: "portrait",
	}

	result, err := svc.PaginateTable(req)
	require.NoError(t, err)
	assert.Equal(t, 28, result.MaxDataRows)
	assert.Equal(t, 4, result.TotalPages)
	assert.Equal(t, []int{28, 28, 28, 16}, result.RowsPerPage)

	for i, p := range result.Pages {
		assert.Equal(t, i+1, p.PageNumber)
		assert.Equal(t, 4, p.TotalPages)
	}
}

func TestServicePaginateTableNilModel(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	result, err := svc.PaginateTable(PaginateTableRequest{PageSize: "A4"})
	require.NoError(t, err)
	assert.Empty(t, result.Pages)
	assert.Equal(t, 0, result.TotalPages)
}

func TestServicePaginateTableEmptyModel(t *testing.T) {
	// Documented quirk: zero rows and no grand total yield zero pages
	// rather than one empty headers-only page.
	svc := NewService(geometry.Default(), false)

	result, err := svc.PaginateTable(PaginateTableRequest{Model: &table.TableModel{}})
	require.NoError(t, err)
	assert.Empty(t, result.Pages)
}

func TestServicePaginateTableUnknownGeometry(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	req := PaginateTableRequest{
		Model:       &table.TableModel{Rows: dataRows(30)},
		PageSize:    "Tabloid",
		Orientation: "diagonal",
	}

	result, err := svc.PaginateTable(req)
	require.NoError(t, err)
	assert.Equal(t, "Letter", result.PageSize)
	assert.Equal(t, "portrait", result.Orientation)
	assert.Equal(t, 28, result.MaxDataRows)
	assert.Equal(t, []int{28, 2}, result.RowsPerPage)
}

func TestServicePaginateTableDeterministic(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	model := &table.TableModel{
		Headers:    testHeaders(),
		Rows:       makeRows("ddSdddSdddddSd"),
		GrandTotal: &table.GrandTotalRow{Cells: []table.Cell{{Text: "Total", ColSpan: 2, RowSpan: 1}}},
		Metadata:   map[string]any{"report": "q3", "filters": "region=EMEA"},
	}
	req := PaginateTableRequest{Model: model, PageSize: "A5", Orientation: "landscape"}

	first, err := svc.PaginateTable(req)
	require.NoError(t, err)
	second, err := svc.PaginateTable(req)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical input and config must produce byte-identical output")
}

func TestServicePaginateTableMultiRowHeaders(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	headers := []table.HeaderRow{
		{Cells: []table.Cell{{Text: "Region", ColSpan: 1, RowSpan: 2, Kind: "hierarchy"}, {Text: "2025", ColSpan: 2, RowSpan: 1, Kind: "values"}}},
		{Cells: []table.Cell{{Text: "Q1", ColSpan: 1, RowSpan: 1, Kind: "metrics"}, {Text: "Q2", ColSpan: 1, RowSpan: 1, Kind: "metrics"}}},
	}
	req := PaginateTableRequest{
		Model:    &table.TableModel{Headers: headers, Rows: dataRows(60)},
		PageSize: "Letter",
	}

	result, err := svc.PaginateTable(req)
	require.NoError(t, err)
	// Two header rows shrink the budget: available 795.6-27=768.6 => 28-1=27.
	assert.Equal(t, 27, result.MaxDataRows)
	for _, p := range result.Pages {
		assert.Len(t, p.Headers, 2)
	}
}

func TestServiceComputePageBudget(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	result, err := svc.ComputePageBudget(PageBudgetRequest{
		PageSize:       "letter",
		Orientation:    "portrait",
		HeaderRowCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Letter", result.PageSize)
	assert.Equal(t, 1, result.HeaderRowCount)
	assert.Equal(t, 28, result.Breakdown.MaxDataRows)
	assert.InDelta(t, 1056, result.Breakdown.PageHeight, 0.001)
}

func TestServiceComputePageBudgetHeaderCountFloor(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	result, err := svc.ComputePageBudget(PageBudgetRequest{PageSize: "Letter"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.HeaderRowCount)
	assert.Equal(t, 28, result.Breakdown.MaxDataRows)
}

func TestServiceTableStats(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	model := &table.TableModel{
		Headers:    testHeaders(),
		Rows:       makeRows("ddSdddSd"),
		GrandTotal: &table.GrandTotalRow{Cells: []table.Cell{{Text: "Total", ColSpan: 1, RowSpan: 1}}},
	}

	result, err := svc.TableStats(TableStatsRequest{Model: model})
	require.NoError(t, err)
	assert.Equal(t, 8, result.RowCount)
	assert.Equal(t, 2, result.SubtotalCount)
	assert.Equal(t, 3, result.GroupCount)
	assert.Equal(t, 1, result.HeaderRowCount)
	assert.True(t, result.HasGrandTotal)
}

func TestServiceTableStatsNilModel(t *testing.T) {
	svc := NewService(geometry.Default(), false)

	result, err := svc.TableStats(TableStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)
	assert.False(t, result.HasGrandTotal)
}

func TestServiceCustomGeometry(t *testing.T) {
	// A taller row eats more budget; the renderer contract and the budget
	// math move together through one shared config.
	cfg := geometry.Default()
	cfg.RowHeight = 54

	svc := NewService(cfg, false)
	result, err := svc.ComputePageBudget(PageBudgetRequest{PageSize: "Letter", HeaderRowCount: 1})
	require.NoError(t, err)
	// available = 1056 - 113.386 - 40 - 64 - 54 - 16 = 768.6 => 14-1 = 13.
	assert.Equal(t, 13, result.Breakdown.MaxDataRows)
}
