package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupported reports a document whose type cannot be classified. It is
// distinct from read failures: callers map it to an "unsupported input"
// result rather than a processing failure.
var ErrUnsupported = errors.New("unsupported document format")

// Service reads documents into per-page raw text. It enforces size limits
// and dispatches to the per-format readers; it holds no per-document state
// and is safe for concurrent use.
type Service struct {
	maxFileSize int64
}

// NewService creates a document reader service with the specified file size
// limit.
func NewService(maxFileSize int64) *Service {
	return &Service{maxFileSize: maxFileSize}
}

// Validate checks that a path points to a readable, supported document
// within the size limit.
func (s *Service) Validate(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > s.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), s.maxFileSize)
	}

	if Identify(path) == TypeUnsupported {
		return fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
	return nil
}

// ReadPages validates the document and returns its pages of raw text.
func (s *Service) ReadPages(path string) ([]PageText, error) {
	if err := s.Validate(path); err != nil {
		return nil, err
	}

	switch Identify(path) {
	case TypePDF:
		return readPDFPages(path)
	case TypeDOCX:
		return readDOCXPages(path)
	case TypeSpreadsheet:
		return readSpreadsheetPages(path)
	case TypeText:
		return readTextPages(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

// readTextPages reads a plain text file as a single page.
func readTextPages(path string) ([]PageText, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}
	return []PageText{{PageNumber: 1, RawText: string(content)}}, nil
}

// ScanDirectory lists supported documents directly inside dir, sorted by
// name. Subdirectories are not descended into; batch inputs are flat upload
// directories.
func (s *Service) ScanDirectory(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := extensionTypes[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
