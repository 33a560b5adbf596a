package table

// Normalizer shapes an externally supplied table model into the form the
// pagination engine expects. It never rejects content: malformed span or
// type values degrade to documented defaults, because dropping rows is a
// worse failure mode than tolerating odd metadata.
type Normalizer struct{}

// NewNormalizer creates a new table model normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns a shaped copy of the model. A nil model stays nil and
// the caller treats it as "nothing to paginate". The input model is never
// mutated; it is immutable for the whole pagination request.
func (n *Normalizer) Normalize(m *TableModel) *TableModel {
	if m == nil {
		return nil
	}

	out := &TableModel{
		Headers:  normalizeHeaders(m.Headers),
		Rows:     normalizeRows(m.Rows),
		Metadata: m.Metadata,
	}
	if m.GrandTotal != nil {
		cells := normalizeCells(m.GrandTotal.Cells)
		out.GrandTotal = &GrandTotalRow{Cells: cells}
	}
	return out
}

func normalizeHeaders(headers []HeaderRow) []HeaderRow {
	if len(headers) == 0 {
		return nil
	}
	out := make([]HeaderRow, len(headers))
	for i, row := range headers {
		cells := normalizeCells(row.Cells)
		for j := range cells {
			cells[j].IsHeader = true
		}
		out[i] = HeaderRow{Cells: cells}
	}
	return out
}

func normalizeRows(rows []DataRow) []DataRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]DataRow, len(rows))
	for i, row := range rows {
		nr := DataRow{
			Cells:         normalizeCells(row.Cells),
			Type:          row.Type,
			SubtotalLevel: row.SubtotalLevel,
		}
		// Unknown type tags degrade to plain data rows; the level only
		// means something on a subtotal.
		if nr.Type != RowTypeSubtotal {
			nr.Type = RowTypeData
			nr.SubtotalLevel = 0
		}
		out[i] = nr
	}
	return out
}

func normalizeCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	for i := range out {
		if out[i].ColSpan < 1 {
			out[i].ColSpan = 1
		}
		if out[i].RowSpan < 1 {
			out[i].RowSpan = 1
		}
	}
	return out
}
