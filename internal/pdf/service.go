package pdf

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/a3tai/pdf-outliner/internal/outline"
)

const outputDirPerm = 0o750

// Service provides PDF outline inference operations. It wires the file
// collaborators (reader, validator, search) to the outline core; each
// document is processed independently with no shared state.
type Service struct {
	maxFileSize int64
	reader      *Reader
	validator   *Validator
	search      *Search
	builder     *outline.Builder
}

// NewService creates a new PDF service with default pipeline configuration
func NewService(maxFileSize int64) *Service {
	return NewServiceWithConfig(maxFileSize, outline.DefaultBuilderConfig())
}

// NewServiceWithConfig creates a new PDF service with a custom pipeline configuration
func NewServiceWithConfig(maxFileSize int64, builderConfig outline.BuilderConfig) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		reader:      NewReader(maxFileSize),
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
		builder:     outline.NewBuilderWithConfig(builderConfig),
	}
}

// OutlineFile infers the outline of a single PDF file. The whole
// operation fails if the file cannot be read; partial page sets are
// never processed.
func (s *Service) OutlineFile(req OutlineFileRequest) (*OutlineFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(req.Path, fileInfo); err != nil {
		return nil, err
	}

	pages, err := s.reader.LoadPages(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract spans: %w", err)
	}

	return &OutlineFileResult{
		Path:   req.Path,
		Pages:  len(pages),
		Size:   fileInfo.Size(),
		Result: s.builder.Build(pages),
	}, nil
}

// ValidateFile validates a PDF file
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}

// SearchDirectory finds PDF files in a directory
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	return s.search.SearchDirectory(req)
}

// ProcessDirectory infers outlines for every PDF file in inputDir and
// writes one JSON file per document to outputDir. Failures are logged and
// skipped so one broken file does not abort the batch.
func (s *Service) ProcessDirectory(inputDir, outputDir string) (*BatchResult, error) {
	if err := os.MkdirAll(outputDir, outputDirPerm); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	searchResult, err := s.SearchDirectory(SearchDirectoryRequest{Directory: inputDir})
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}

	if searchResult.TotalCount == 0 {
		log.Printf("No PDF files found in %s", inputDir)
		return batch, nil
	}

	for _, file := range searchResult.Files {
		result, err := s.OutlineFile(OutlineFileRequest{Path: file.Path})
		if err != nil {
			log.Printf("Failed to process %s: %v", file.Name, err)
			batch.Failed++
			batch.Failures = append(batch.Failures, file.Name)
			continue
		}

		outputPath := filepath.Join(outputDir, jsonName(file.Name))
		if err := writeResult(outputPath, result.Result); err != nil {
			log.Printf("Failed to write %s: %v", outputPath, err)
			batch.Failed++
			batch.Failures = append(batch.Failures, file.Name)
			continue
		}

		log.Printf("Processed %s (%d pages, %d headings)", file.Name, result.Pages, len(result.Result.Outline))
		batch.Processed++
	}

	return batch, nil
}

// ServerInfo returns information about the running service
func (s *Service) ServerInfo(serverName, version, directory string) (*ServerInfoResult, error) {
	info := &ServerInfoResult{
		ServerName:       serverName,
		Version:          version,
		DefaultDirectory: directory,
		MaxFileSize:      s.maxFileSize,
	}

	if searchResult, err := s.SearchDirectory(SearchDirectoryRequest{Directory: directory}); err == nil {
		info.DirectoryFiles = searchResult.Files
	}

	return info, nil
}

// jsonName derives the output filename for a PDF input
func jsonName(pdfName string) string {
	return strings.TrimSuffix(pdfName, filepath.Ext(pdfName)) + ".json"
}

// writeResult serializes a document result to disk. Non-ASCII text is
// preserved as-is, never escaped.
func writeResult(path string, result outline.DocumentResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}

	return nil
}
