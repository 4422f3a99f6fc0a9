package pdf

import "github.com/a3tai/pdf-outliner/internal/outline"

// FileInfo represents information about a PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// OutlineFileRequest represents a request to infer the outline of a PDF file
type OutlineFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest represents a request to validate a PDF file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest represents a request to find PDF files in a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query,omitempty"`
}

// Result Types

// OutlineFileResult represents the result of outline inference for one file
type OutlineFileResult struct {
	Path   string                 `json:"path"`
	Pages  int                    `json:"pages"`
	Size   int64                  `json:"size"`
	Result outline.DocumentResult `json:"result"`
}

// ValidateFileResult represents the result of PDF validation
type ValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult represents the result of a directory search
type SearchDirectoryResult struct {
	Directory   string     `json:"directory"`
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// BatchResult summarizes a batch run over a directory of PDF files
type BatchResult struct {
	InputDir  string   `json:"input_dir"`
	OutputDir string   `json:"output_dir"`
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Failures  []string `json:"failures,omitempty"`
}

// ServerInfoResult describes the running service for the MCP info tool
type ServerInfoResult struct {
	ServerName       string     `json:"server_name"`
	Version          string     `json:"version"`
	DefaultDirectory string     `json:"default_directory"`
	MaxFileSize      int64      `json:"max_file_size"`
	DirectoryFiles   []FileInfo `json:"directory_files"`
}
