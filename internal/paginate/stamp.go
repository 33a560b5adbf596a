package paginate

import (
	"github.com/pagemill/pagemill/internal/table"
)

// Stamp writes the final page count into every page so each can display
// "Page X of N". It has to run as a second pass: the count is unknowable
// until assembly completes.
func Stamp(pages []table.Page) []table.Page {
	total := len(pages)
	for i := range pages {
		pages[i].TotalPages = total
	}
	return pages
}
