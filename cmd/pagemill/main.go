package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pagemill/pagemill/internal/config"
	"github.com/pagemill/pagemill/internal/extract"
	"github.com/pagemill/pagemill/internal/mcp"
	"github.com/pagemill/pagemill/internal/paginate"
	"github.com/pagemill/pagemill/internal/table"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the server mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		// Reduce log verbosity in stdio mode unless debug is enabled
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		// In run mode, use normal stderr logging with more detail
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// runStdioMode handles stdio mode execution
func runStdioMode(ctx context.Context, server *mcp.Server) {
	// In stdio mode, the parent process controls our lifecycle
	// We should exit cleanly when stdin is closed or we get an error

	// Start server and wait for it to complete
	if err := server.Run(ctx); err != nil {
		// Only log to stderr in debug mode to avoid protocol interference
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// runOnce paginates a single table model file and writes the page list.
func runOnce(ctx context.Context, cfg *config.Config, pagerService *paginate.Service) error {
	model, err := extractModel(ctx, cfg)
	if err != nil {
		return err
	}

	result, err := pagerService.PaginateTable(paginate.PaginateTableRequest{
		Model:       model,
		PageSize:    cfg.PageSize,
		Orientation: cfg.Orientation,
	})
	if err != nil {
		return fmt.Errorf("pagination failed: %w", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode page list: %w", err)
	}
	output = append(output, '\n')

	if cfg.OutputPath == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(cfg.OutputPath, output, 0o644); err != nil {
		return fmt.Errorf("failed to write page list: %w", err)
	}

	if cfg.IsDebug() {
		log.Printf("wrote %d pages to %s", result.TotalPages, cfg.OutputPath)
	}
	return nil
}

// extractModel reads the input file and builds a table model from it using
// the extractor matching the configured format.
func extractModel(ctx context.Context, cfg *config.Config) (*table.TableModel, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	extractor := newExtractor(cfg.InputFormat, f)
	model, err := extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract table model from %s: %w", cfg.InputPath, err)
	}
	return model, nil
}

// newExtractor picks the extractor for an input format. The config layer
// rejects unknown formats, so anything but HTML is treated as JSON.
func newExtractor(format string, r io.Reader) extract.Extractor {
	if format == config.FormatHTML {
		return extract.NewHTMLExtractor(r)
	}
	return extract.NewJSONExtractor(r)
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging based on mode
	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && cfg.IsRunMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	// Create pagination service
	pagerService := paginate.NewService(cfg.Geometry(), cfg.IsDebug())

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle different modes
	if cfg.IsRunMode() {
		if err := runOnce(ctx, cfg, pagerService); err != nil {
			log.Fatalf("Pagination failed: %v", err)
		}
		return
	}

	// Create MCP server
	server, err := mcp.NewServer(cfg, pagerService)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	runStdioMode(ctx, server)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Pagemill\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
