// Package extract supplies the content-extraction boundary of the
// pagination engine. The engine never queries a live document; it consumes
// a fully-settled TableModel snapshot produced by an Extractor.
package extract

import (
	"context"

	"github.com/pagemill/pagemill/internal/table"
)

// Extractor produces a table model from some external source. Readiness
// detection for live sources (browser automation, DOM quiescence) is out of
// scope here: an Extractor is handed material that has already settled.
type Extractor interface {
	Extract(ctx context.Context) (*table.TableModel, error)
}
