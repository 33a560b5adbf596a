// Package geometry is the single shared definition of the layout contract
// between the pagination engine and the print renderer. The renderer's CSS
// constants and the budget math here must agree, or pages systematically
// overflow or waste space.
package geometry

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PageSize names a paper size supported by the print stylesheet.
type PageSize string

const (
	Letter PageSize = "Letter"
	Legal  PageSize = "Legal"
	A4     PageSize = "A4"
	A3     PageSize = "A3"
	A5     PageSize = "A5"
)

// Orientation is the page orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// All lengths are expressed in CSS reference pixels: 96 units per inch.
const (
	UnitsPerInch  = 96.0
	pointsPerInch = 72.0
	mmPerInch     = 25.4
)

// dim is a portrait page size in 96dpi units.
type dim struct {
	width  float64
	height float64
}

func fromPoints(d *types.Dim) dim {
	return dim{
		width:  d.Width / pointsPerInch * UnitsPerInch,
		height: d.Height / pointsPerInch * UnitsPerInch,
	}
}

func fromMM(widthMM, heightMM float64) dim {
	return dim{
		width:  widthMM / mmPerInch * UnitsPerInch,
		height: heightMM / mmPerInch * UnitsPerInch,
	}
}

// paperDims holds the sizes the renderer ships stylesheets for; sizes it
// does not know (e.g. Tabloid) fall back to Letter. The inch-defined sizes
// come from pdfcpu's point table, which is exact for them. The A-series
// sizes are derived from their ISO millimetre definitions instead: pdfcpu
// rounds their point values to integers (A4 595x842), and the budget must
// stay bit-reproducible against the renderer's mm-based stylesheet.
var paperDims = map[PageSize]dim{
	Letter: fromPoints(types.PaperSize["Letter"]),
	Legal:  fromPoints(types.PaperSize["Legal"]),
	A4:     fromMM(210, 297),
	A3:     fromMM(297, 420),
	A5:     fromMM(148, 210),
}

// Config carries the fixed layout constants the budget calculation depends
// on. The defaults mirror the renderer's print stylesheet; RowHeight must be
// identical to the value used when headers are measured.
type Config struct {
	MarginTopMM     float64 // top page margin, millimetres
	MarginBottomMM  float64 // bottom page margin, millimetres
	PagePadding     float64 // page container padding, top+bottom combined
	PageHeaderBlock float64 // title + date + optional filter line
	RowHeight       float64 // fixed height of every table row
	SafetyBuffer    float64 // absorbs border-collapsing rounding error
}

// Default returns the layout constants the renderer is built against.
func Default() Config {
	return Config{
		MarginTopMM:     15,
		MarginBottomMM:  15,
		PagePadding:     40,
		PageHeaderBlock: 64,
		RowHeight:       27,
		SafetyBuffer:    16,
	}
}

// VerticalMargins returns the combined top and bottom margins in units.
func (c Config) VerticalMargins() float64 {
	return (c.MarginTopMM + c.MarginBottomMM) / mmPerInch * UnitsPerInch
}

// PageHeight returns the page height in units for a size and orientation.
// Unknown sizes degrade to Letter and unknown orientations to portrait;
// this function never fails.
func PageHeight(size PageSize, orientation Orientation) float64 {
	d, ok := paperDims[size]
	if !ok {
		d = paperDims[Letter]
	}
	if orientation == Landscape {
		return d.width
	}
	return d.height
}

// ParsePageSize maps an externally supplied size name onto a supported
// PageSize, case-insensitively. Anything unrecognized becomes Letter.
func ParsePageSize(s string) PageSize {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letter":
		return Letter
	case "legal":
		return Legal
	case "a4":
		return A4
	case "a3":
		return A3
	case "a5":
		return A5
	default:
		return Letter
	}
}

// ParseOrientation maps an externally supplied orientation name onto a
// supported Orientation. Anything unrecognized becomes portrait.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(Landscape)) {
		return Landscape
	}
	return Portrait
}
