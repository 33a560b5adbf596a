package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pagemill/pagemill/internal/table"
)

// JSONExtractor decodes a table model from its JSON wire form, the input
// contract produced by the upstream content extractor.
type JSONExtractor struct {
	r io.Reader
}

// NewJSONExtractor creates an extractor reading from r.
func NewJSONExtractor(r io.Reader) *JSONExtractor {
	return &JSONExtractor{r: r}
}

// Extract decodes the model. Shaping of odd span/type values is left to the
// normalizer; only malformed JSON is an error.
func (e *JSONExtractor) Extract(_ context.Context) (*table.TableModel, error) {
	data, err := io.ReadAll(e.r)
	if err != nil {
		return nil, fmt.Errorf("reading table model: %w", err)
	}
	return ParseModel(data)
}

// ParseModel decodes a table model from JSON bytes.
func ParseModel(data []byte) (*table.TableModel, error) {
	var m table.TableModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding table model: %w", err)
	}
	return &m, nil
}
