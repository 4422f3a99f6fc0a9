package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/a3tai/pdf-outliner/internal/config"
	"github.com/a3tai/pdf-outliner/internal/mcp"
	"github.com/a3tai/pdf-outliner/internal/outline"
	"github.com/a3tai/pdf-outliner/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		log.SetOutput(os.Stderr)
		if cfg.IsDebug() {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	}
}

// runBatchMode processes every PDF in the input directory and writes one
// JSON outline per file to the output directory
func runBatchMode(cfg *config.Config, pdfService *pdf.Service) {
	batch, err := pdfService.ProcessDirectory(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	log.Printf("Batch complete: %d processed, %d failed", batch.Processed, batch.Failed)
	if batch.Failed > 0 {
		os.Exit(1)
	}
}

// runStdioMode serves MCP over stdin/stdout
func runStdioMode(ctx context.Context, server *mcp.Server) {
	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	pdfService := pdf.NewServiceWithConfig(cfg.MaxFileSize, outline.BuilderConfig{
		BandLow:       cfg.BandLow,
		BandHigh:      cfg.BandHigh,
		SizeTolerance: cfg.SizeTolerance,
	})

	if cfg.IsBatchMode() {
		runBatchMode(cfg, pdfService)
		return
	}

	server, err := mcp.NewServer(cfg, pdfService)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runStdioMode(ctx, server)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PDF Outliner\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
