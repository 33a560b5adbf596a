package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemill/pagemill/internal/table"
)

func TestStamp(t *testing.T) {
	pages := []table.Page{
		{PageNumber: 1},
		{PageNumber: 2},
		{PageNumber: 3},
	}

	stamped := Stamp(pages)
	for _, p := range stamped {
		assert.Equal(t, 3, p.TotalPages)
	}
}

func TestStampEmpty(t *testing.T) {
	assert.Empty(t, Stamp(nil))
	assert.Empty(t, Stamp([]table.Page{}))
}

func TestStampSinglePage(t *testing.T) {
	stamped := Stamp([]table.Page{{PageNumber: 1}})
	assert.Equal(t, 1, stamped[0].TotalPages)
}
