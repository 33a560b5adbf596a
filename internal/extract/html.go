package extract

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/pagemill/pagemill/internal/table"
)

// HTMLExtractor builds a table model from a static HTML snapshot of a
// rendered report table. It understands the markup conventions the report
// renderer emits: thead rows become header rows, tr class or data-row-type
// attributes discriminate subtotal rows, and the tfoot (or a row marked
// grand-total) becomes the grand total.
type HTMLExtractor struct {
	r io.Reader
}

// NewHTMLExtractor creates an extractor reading an HTML document from r.
func NewHTMLExtractor(r io.Reader) *HTMLExtractor {
	return &HTMLExtractor{r: r}
}

// Extract parses the snapshot and returns the model for its first table.
// A document without a table is an error: there is nothing to paginate and
// the caller should know the snapshot was not what it expected.
func (e *HTMLExtractor) Extract(_ context.Context) (*table.TableModel, error) {
	doc, err := html.Parse(e.r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tbl := findElement(doc, "table")
	if tbl == nil {
		return nil, fmt.Errorf("no table element in document")
	}

	m := &table.TableModel{}
	if caption := findElement(tbl, "caption"); caption != nil {
		if title := textContent(caption); title != "" {
			m.Metadata = map[string]any{"title": title}
		}
	}

	for _, tr := range collectRows(tbl) {
		switch tr.section {
		case "thead":
			m.Headers = append(m.Headers, table.HeaderRow{Cells: parseCells(tr.node)})
		case "tfoot":
			if m.GrandTotal == nil {
				m.GrandTotal = &table.GrandTotalRow{Cells: parseCells(tr.node)}
			}
		default:
			if isGrandTotalRow(tr.node) {
				if m.GrandTotal == nil {
					m.GrandTotal = &table.GrandTotalRow{Cells: parseCells(tr.node)}
				}
				continue
			}
			m.Rows = append(m.Rows, parseDataRow(tr.node))
		}
	}
	return m, nil
}

// tableRow pairs a tr node with the section it was found in.
type tableRow struct {
	node    *html.Node
	section string // "thead", "tbody", "tfoot" or "" for bare rows
}

// collectRows gathers the tr elements of a table in document order,
// remembering which section each came from. Rows of nested tables are not
// collected.
func collectRows(tbl *html.Node) []tableRow {
	var rows []tableRow

	var walk func(n *html.Node, section string)
	walk = func(n *html.Node, section string) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				walk(c, c.Data)
			case "tr":
				rows = append(rows, tableRow{node: c, section: section})
			case "table":
				// nested table, skip
			default:
				walk(c, section)
			}
		}
	}
	walk(tbl, "")
	return rows
}

func parseDataRow(tr *html.Node) table.DataRow {
	row := table.DataRow{
		Cells: parseCells(tr),
		Type:  table.RowTypeData,
	}
	if isSubtotalRow(tr) {
		row.Type = table.RowTypeSubtotal
		if lvl, err := strconv.Atoi(attr(tr, "data-subtotal-level")); err == nil {
			row.SubtotalLevel = lvl
		}
	}
	return row
}

func parseCells(tr *html.Node) []table.Cell {
	var cells []table.Cell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cells = append(cells, table.Cell{
			Text:     textContent(c),
			ColSpan:  parseSpan(attr(c, "colspan")),
			RowSpan:  parseSpan(attr(c, "rowspan")),
			Kind:     attr(c, "data-kind"),
			ColumnID: attr(c, "data-column-id"),
			IsHeader: c.Data == "th",
		})
	}
	return cells
}

func isSubtotalRow(tr *html.Node) bool {
	if attr(tr, "data-row-type") == "subtotal" {
		return true
	}
	return hasClass(tr, "subtotal")
}

func isGrandTotalRow(tr *html.Node) bool {
	if attr(tr, "data-row-type") == "grand-total" {
		return true
	}
	return hasClass(tr, "grand-total")
}

// findElement returns the first element with the given tag in document
// order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent returns the concatenated, whitespace-collapsed text of a
// node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// parseSpan parses a colspan/rowspan attribute; anything unusable is 1.
func parseSpan(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 1
	}
	return v
}
