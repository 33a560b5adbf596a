package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemill/pagemill/internal/geometry"
)

func TestComputeMaxDataRowsLetterPortrait(t *testing.T) {
	// The canonical fixture: Letter portrait, one header row, defaults.
	// pageHeight=1056, margins~113.4, padding=40, header block=64,
	// header height=27, safety=16 => available~795.6 => floor/27 - 1 = 28.
	got := ComputeMaxDataRows(geometry.Letter, geometry.Portrait, 1, geometry.Default())
	assert.Equal(t, 28, got)
}

func TestComputeBudgetBreakdown(t *testing.T) {
	b := ComputeBudget(geometry.Letter, geometry.Portrait, 1, geometry.Default())
	assert.InDelta(t, 1056, b.PageHeight, 0.001)
	assert.InDelta(t, 113.386, b.VerticalMargins, 0.001)
	assert.Equal(t, 40.0, b.PagePadding)
	assert.Equal(t, 64.0, b.PageHeaderBlock)
	assert.Equal(t, 27.0, b.HeaderHeight)
	assert.Equal(t, 16.0, b.SafetyBuffer)
	assert.InDelta(t, 795.614, b.Available, 0.001)
	assert.Equal(t, 28, b.MaxDataRows)
}

func TestComputeMaxDataRowsMonotonicInHeaderRows(t *testing.T) {
	cfg := geometry.Default()
	prev := ComputeMaxDataRows(geometry.Letter, geometry.Portrait, 1, cfg)
	for headerRows := 2; headerRows <= 30; headerRows++ {
		cur := ComputeMaxDataRows(geometry.Letter, geometry.Portrait, headerRows, cfg)
		assert.LessOrEqual(t, cur, prev, "budget must not grow with header rows (headerRows=%d)", headerRows)
		prev = cur
	}
}

func TestComputeMaxDataRowsNeverBelowOne(t *testing.T) {
	// Enough header rows to consume the whole page.
	got := ComputeMaxDataRows(geometry.A5, geometry.Landscape, 50, geometry.Default())
	assert.Equal(t, 1, got)
}

func TestComputeMaxDataRowsHeaderCountFallback(t *testing.T) {
	cfg := geometry.Default()
	one := ComputeMaxDataRows(geometry.Letter, geometry.Portrait, 1, cfg)
	assert.Equal(t, one, ComputeMaxDataRows(geometry.Letter, geometry.Portrait, 0, cfg))
	assert.Equal(t, one, ComputeMaxDataRows(geometry.Letter, geometry.Portrait, -3, cfg))
}

func TestComputeMaxDataRowsUnknownSizeFallsBackToLetter(t *testing.T) {
	cfg := geometry.Default()
	letter := ComputeMaxDataRows(geometry.Letter, geometry.Portrait, 1, cfg)
	tabloid := ComputeMaxDataRows(geometry.PageSize("Tabloid"), geometry.Portrait, 1, cfg)
	assert.Equal(t, letter, tabloid)
}

func TestComputeMaxDataRowsPerSize(t *testing.T) {
	cfg := geometry.Default()
	tests := []struct {
		name        string
		size        geometry.PageSize
		orientation geometry.Orientation
		want        int
	}{
		// available = pageHeight - 113.386 - 40 - 64 - 27 - 16
		{"letter landscape", geometry.Letter, geometry.Landscape, 19}, // 816.0 => 555.6 => 20-1
		{"legal portrait", geometry.Legal, geometry.Portrait, 39},     // 1344.0 => 1083.6 => 40-1
		{"a4 portrait", geometry.A4, geometry.Portrait, 30},           // 1122.5 => 862.1 => 31-1
		{"a3 portrait", geometry.A3, geometry.Portrait, 48},           // 1587.4 => 1327.0 => 49-1
		{"a5 portrait", geometry.A5, geometry.Portrait, 18},           // 793.7 => 533.3 => 19-1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMaxDataRows(tt.size, tt.orientation, 1, cfg))
		})
	}
}

func TestComputeBudgetDeterministic(t *testing.T) {
	cfg := geometry.Default()
	a := ComputeBudget(geometry.A4, geometry.Landscape, 3, cfg)
	b := ComputeBudget(geometry.A4, geometry.Landscape, 3, cfg)
	assert.Equal(t, a, b)
}
