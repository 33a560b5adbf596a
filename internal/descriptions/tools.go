package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Pagination Tools
	TablePaginateDescription = `Split a hierarchical report table into fixed-size print pages.

**When to use:** A rendered report table needs to be broken into pages for print or PDF output while keeping headers and subtotal groups intact.

**Why it's useful:** Computes the exact row capacity for the requested paper size, repeats the full header stack on every page, keeps each subtotal group on a single page, and places the grand total on the final page.

**Examples:**
• Print preparation: "Paginate this revenue table for Letter portrait output"
• Large exports: "Split the 500-row ledger across A4 landscape pages"
• Layout preview: "Show how the quarterly report breaks across Legal pages"

**Common workflows:**
1. Print Pipeline: Extract table → Paginate → Render each page → Assemble PDF
2. Preview: Paginate → Inspect rows-per-page → Adjust page size → Re-paginate
3. Batch Export: Paginate each report → Stamp page numbers → Archive output

**Best practices:** Unknown page sizes degrade to Letter and unknown orientations to portrait; check the page_size and orientation fields of the response to see what was actually used.`

	TablePageBudgetDescription = `Compute how many data rows fit on one page for a given paper size.

**When to use:** Need the row capacity of a page before paginating, or to understand why a table broke where it did.

**Why it's useful:** Returns the full height budget breakdown (page height, margins, padding, header block, header rows, safety buffer) alongside the final row capacity, making the layout arithmetic inspectable.

**Examples:**
• Capacity check: "How many rows fit on A4 landscape with a two-row header?"
• Layout debugging: "Show the height budget that produced 28 rows per page"
• Planning: "Compare row capacity across Letter, Legal and A3"

**Common workflows:**
1. Planning: Compute budget → Estimate page count → Choose paper size
2. Debugging: Compare budget breakdown → Spot the consumed height → Adjust geometry
3. Validation: Compute budget → Cross-check against rendered output

**Best practices:** The budget never drops below one row per page; header_row_count below 1 is treated as 1.`

	TableStatsDescription = `Summarize a table model: row counts, subtotal groups, and grand total presence.

**When to use:** Need a quick overview of a table model's shape before paginating it.

**Why it's useful:** Reports how many data rows, subtotal rows and subtotal groups the model contains, so page counts and group packing behavior can be anticipated.

**Examples:**
• Pre-flight check: "How many subtotal groups does this ledger have?"
• Sanity check: "Confirm the extracted model kept its grand total"
• Estimation: "Count rows to estimate pages before paginating"

**Common workflows:**
1. Pre-flight: Get stats → Verify model shape → Paginate
2. Extraction QA: Extract from HTML → Get stats → Compare against source
3. Estimation: Stats → Divide by page budget → Predict page count

**Best practices:** Run after extraction to confirm subtotal markers survived the trip.`

	TableExtractHTMLDescription = `Build a table model from a static HTML snapshot of a rendered report table.

**When to use:** The report exists as rendered HTML and needs to become a structured table model for pagination.

**Why it's useful:** Understands the renderer's markup conventions: thead rows become the header stack, tr class or data-row-type attributes mark subtotal rows, and the tfoot becomes the grand total.

**Examples:**
• Snapshot processing: "Extract the table from this saved report page"
• Pipeline input: "Turn the rendered quarterly report into a model and paginate it"
• Migration: "Convert archived HTML reports into structured models"

**Common workflows:**
1. HTML Pipeline: Extract from HTML → Get stats → Paginate → Render pages
2. Archival: Extract legacy snapshots → Store models as JSON → Re-paginate on demand
3. QA: Extract → Compare stats against the source table

**Best practices:** Only the first table in the document is read; pass settled HTML, not a live page mid-update.`

	// Utility Tools
	PagerServerInfoDescription = `Get server status, available tools, and the active layout geometry.

**When to use:** Starting work with the pagination server, troubleshooting, or checking which geometry constants are in effect.

**Why it's useful:** Reports the configured row height, margins and padding so paginated output can be reconciled with the renderer's stylesheet.

**Examples:**
• Session startup: "Verify the server is ready and list its tools"
• Debugging: "Check the active row height when page counts look wrong"
• Discovery: "See all available tools and their descriptions"

**Common workflows:**
1. Session Startup: Check server info → Verify geometry → Plan pagination
2. Debugging: Review geometry constants → Compare to stylesheet → Adjust flags
3. Planning: Review available tools → Choose appropriate methods → Execute workflow

**Best practices:** Run at start of sessions; geometry mismatches with the renderer are the usual cause of off-by-one page breaks.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"table_paginate":     TablePaginateDescription,
	"table_page_budget":  TablePageBudgetDescription,
	"table_stats":        TableStatsDescription,
	"table_extract_html": TableExtractHTMLDescription,
	"pager_server_info":  PagerServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
