package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pagemill/pagemill/internal/config"
	"github.com/pagemill/pagemill/internal/descriptions"
	"github.com/pagemill/pagemill/internal/extract"
	"github.com/pagemill/pagemill/internal/paginate"
)

// Server represents the MCP server instance
type Server struct {
	config       *config.Config
	pagerService *paginate.Service
	mcpServer    *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pagerService *paginate.Service) (*Server, error) {
	if pagerService == nil {
		return nil, fmt.Errorf("pagerService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:       cfg,
		pagerService: pagerService,
		mcpServer:    mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register table paginate tool
	tablePaginateTool := mcp.NewTool(
		"table_paginate",
		mcp.WithDescription("Split a table model into fixed-size print pages"),
		mcp.WithString("model",
			mcp.Required(),
			mcp.Description("Table model as a JSON document"),
		),
		mcp.WithString("page_size",
			mcp.Description("Page size: Letter, Legal, A4, A3, A5 (uses configured default if empty)"),
		),
		mcp.WithString("orientation",
			mcp.Description("Page orientation: portrait or landscape (uses configured default if empty)"),
		),
	)
	s.mcpServer.AddTool(tablePaginateTool, s.handleTablePaginate)

	// Register page budget tool
	tablePageBudgetTool := mcp.NewTool(
		"table_page_budget",
		mcp.WithDescription("Compute how many data rows fit on one page for a paper size"),
		mcp.WithString("page_size",
			mcp.Description("Page size: Letter, Legal, A4, A3, A5 (uses configured default if empty)"),
		),
		mcp.WithString("orientation",
			mcp.Description("Page orientation: portrait or landscape (uses configured default if empty)"),
		),
		mcp.WithNumber("header_row_count",
			mcp.Description("Number of header rows repeated on every page (default 1)"),
		),
	)
	s.mcpServer.AddTool(tablePageBudgetTool, s.handleTablePageBudget)

	// Register table stats tool
	tableStatsTool := mcp.NewTool(
		"table_stats",
		mcp.WithDescription("Summarize a table model: rows, subtotal groups, grand total"),
		mcp.WithString("model",
			mcp.Required(),
			mcp.Description("Table model as a JSON document"),
		),
	)
	s.mcpServer.AddTool(tableStatsTool, s.handleTableStats)

	// Register HTML extraction tool
	tableExtractHTMLTool := mcp.NewTool(
		"table_extract_html",
		mcp.WithDescription("Build a table model from a static HTML snapshot of a report table"),
		mcp.WithString("html",
			mcp.Required(),
			mcp.Description("HTML document containing the rendered report table"),
		),
	)
	s.mcpServer.AddTool(tableExtractHTMLTool, s.handleTableExtractHTML)

	// Register server info tool
	pagerServerInfoTool := mcp.NewTool(
		"pager_server_info",
		mcp.WithDescription("Get server information, available tools, active geometry, and usage guidance"),
	)
	s.mcpServer.AddTool(pagerServerInfoTool, s.handlePagerServerInfo)
}

// Handler functions
func (s *Server) handleTablePaginate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modelJSON, err := request.RequireString("model")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	model, err := extract.ParseModel([]byte(modelJSON))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	req := paginate.PaginateTableRequest{
		Model:       model,
		PageSize:    s.config.PageSize, // default
		Orientation: s.config.Orientation,
	}
	if size, ok := args["page_size"].(string); ok && size != "" {
		req.PageSize = size
	}
	if orientation, ok := args["orientation"].(string); ok && orientation != "" {
		req.Orientation = orientation
	}

	result, err := s.pagerService.PaginateTable(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText, err := s.formatPaginateTableResult(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleTablePageBudget(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	req := paginate.PageBudgetRequest{
		PageSize:       s.config.PageSize, // default
		Orientation:    s.config.Orientation,
		HeaderRowCount: 1,
	}
	if size, ok := args["page_size"].(string); ok && size != "" {
		req.PageSize = size
	}
	if orientation, ok := args["orientation"].(string); ok && orientation != "" {
		req.Orientation = orientation
	}
	if count, ok := args["header_row_count"].(float64); ok {
		req.HeaderRowCount = int(count)
	}

	result, err := s.pagerService.ComputePageBudget(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatPageBudgetResult(result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleTableStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modelJSON, err := request.RequireString("model")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	model, err := extract.ParseModel([]byte(modelJSON))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := paginate.TableStatsRequest{Model: model}
	result, err := s.pagerService.TableStats(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatTableStatsResult(result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleTableExtractHTML(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	htmlDoc, err := request.RequireString("html")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	model, err := extract.NewHTMLExtractor(strings.NewReader(htmlDoc)).Extract(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stats, err := s.pagerService.TableStats(paginate.TableStatsRequest{Model: model})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	modelJSON, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted table model: %d header row(s), %d data row(s), %d subtotal(s)\n",
		stats.HeaderRowCount, stats.RowCount, stats.SubtotalCount)
	if stats.HasGrandTotal {
		responseText += "Grand total: present\n"
	} else {
		responseText += "Grand total: absent\n"
	}
	responseText += "\nModel:\n"
	responseText += string(modelJSON)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePagerServerInfo(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	responseText := s.formatServerInfo()
	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) formatPaginateTableResult(result *paginate.PaginateTableResult) (string, error) {
	text := fmt.Sprintf("Paginated table for %s %s\n", result.PageSize, result.Orientation)
	text += fmt.Sprintf("Row budget: %d data rows per page\n", result.MaxDataRows)
	text += fmt.Sprintf("Total pages: %d\n", result.TotalPages)
	if len(result.RowsPerPage) > 0 {
		text += "Rows per page:"
		for _, n := range result.RowsPerPage {
			text += fmt.Sprintf(" %d", n)
		}
		text += "\n"
	}

	pagesJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode page list: %w", err)
	}

	text += "\nPages:\n"
	text += string(pagesJSON)
	return text, nil
}

func (s *Server) formatPageBudgetResult(result *paginate.PageBudgetResult) string {
	b := result.Breakdown

	text := fmt.Sprintf("Page budget for %s %s (%d header row(s))\n",
		result.PageSize, result.Orientation, result.HeaderRowCount)
	text += fmt.Sprintf("Page height: %.2f units\n", b.PageHeight)
	text += fmt.Sprintf("Vertical margins: %.2f units\n", b.VerticalMargins)
	text += fmt.Sprintf("Page padding: %.2f units\n", b.PagePadding)
	text += fmt.Sprintf("Page header block: %.2f units\n", b.PageHeaderBlock)
	text += fmt.Sprintf("Table header rows: %.2f units\n", b.HeaderHeight)
	text += fmt.Sprintf("Safety buffer: %.2f units\n", b.SafetyBuffer)
	text += fmt.Sprintf("Available for data rows: %.2f units\n", b.Available)
	text += fmt.Sprintf("Max data rows per page: %d\n", b.MaxDataRows)

	return text
}

func (s *Server) formatTableStatsResult(result *paginate.TableStatsResult) string {
	text := "Table Model Statistics\n"
	text += fmt.Sprintf("Data rows: %d\n", result.RowCount)
	text += fmt.Sprintf("Subtotal rows: %d\n", result.SubtotalCount)
	text += fmt.Sprintf("Subtotal groups: %d\n", result.GroupCount)
	text += fmt.Sprintf("Header rows: %d\n", result.HeaderRowCount)
	text += fmt.Sprintf("Grand total: %t\n", result.HasGrandTotal)

	return text
}

func (s *Server) formatServerInfo() string {
	geo := s.pagerService.Geometry()

	text := fmt.Sprintf("📋 %s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("📄 Default page: %s %s\n\n", s.config.PageSize, s.config.Orientation)

	// Active geometry contract
	text += "📐 Layout Geometry:\n"
	text += fmt.Sprintf("   Row height: %.2f units\n", geo.RowHeight)
	text += fmt.Sprintf("   Margins: %.1fmm top, %.1fmm bottom\n", geo.MarginTopMM, geo.MarginBottomMM)
	text += fmt.Sprintf("   Page padding: %.2f units\n", geo.PagePadding)
	text += fmt.Sprintf("   Page header block: %.2f units\n", geo.PageHeaderBlock)
	text += fmt.Sprintf("   Safety buffer: %.2f units\n\n", geo.SafetyBuffer)

	// Available tools
	text += "🛠️  Available Tools:\n"
	for _, name := range []string{
		"table_paginate", "table_page_budget", "table_stats",
		"table_extract_html", "pager_server_info",
	} {
		text += fmt.Sprintf("\n• %s\n", name)
		text += descriptions.GetToolDescription(name) + "\n"
	}

	text += "\nUnknown page sizes degrade to Letter; unknown orientations degrade to portrait."

	return text
}

// Run starts the MCP server over standard I/O
func (s *Server) Run(ctx context.Context) error {
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting table pagination MCP server in stdio mode")
		log.Printf("Default page: %s %s", s.config.PageSize, s.config.Orientation)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
