package pii

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/document"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/extract"
)

// Document status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// DocumentResult is the per-document outcome. Status "error" means the input
// could not be classified; "failure" means reading or extraction broke;
// neither escapes as a Go error, so one bad document never aborts a batch.
type DocumentResult struct {
	Status   string `json:"status"`
	FileName string `json:"file_name"`
	Rows     []Row  `json:"rows"`
	Error    string `json:"error,omitempty"`
}

// BatchResult concatenates the rows of all successful documents in a batch.
// Failed file names are retained for operator visibility.
type BatchResult struct {
	BatchID     string   `json:"batch_id"`
	Status      string   `json:"status"`
	Rows        []Row    `json:"rows"`
	FailedFiles []string `json:"failed_files,omitempty"`
}

// Service runs the extraction pipeline: document reader, per-page hybrid
// extraction with applicant segmentation, row building. It holds no mutable
// state; documents and pages may be processed concurrently by callers.
type Service struct {
	documents *document.Service
	engine    *extract.Engine
}

// NewService creates the pipeline service.
func NewService(documents *document.Service, engine *extract.Engine) *Service {
	return &Service{documents: documents, engine: engine}
}

// ProcessDocument reads one document and extracts rows from each of its
// pages. All failure modes are captured in the result; a panic anywhere in
// reading or extraction is recovered and reported as a failure.
func (s *Service) ProcessDocument(ctx context.Context, path string) (result DocumentResult) {
	fileName := filepath.Base(path)

	defer func() {
		if r := recover(); r != nil {
			result = DocumentResult{
				Status:   StatusFailure,
				FileName: fileName,
				Error:    fmt.Sprintf("extraction panic: %v", r),
			}
		}
	}()

	pages, err := s.documents.ReadPages(path)
	if err != nil {
		status := StatusFailure
		if errors.Is(err, document.ErrUnsupported) {
			status = StatusError
		}
		return DocumentResult{Status: status, FileName: fileName, Error: err.Error()}
	}

	var rows []Row
	for _, page := range pages {
		results := s.engine.ExtractPage(ctx, page.RawText)
		rows = append(rows, BuildRows(fileName, page, results)...)
	}

	return DocumentResult{Status: StatusSuccess, FileName: fileName, Rows: rows}
}

// ProcessBatch processes every path, concatenating rows from successful
// documents. Per-document failures are logged and swallowed; siblings keep
// processing.
func (s *Service) ProcessBatch(ctx context.Context, paths []string) BatchResult {
	batch := BatchResult{BatchID: uuid.New().String(), Status: StatusSuccess}

	for _, path := range paths {
		result := s.ProcessDocument(ctx, path)
		if result.Status != StatusSuccess {
			log.Printf("skipping document %s: %s (%s)", result.FileName, result.Error, result.Status)
			batch.FailedFiles = append(batch.FailedFiles, result.FileName)
			continue
		}
		batch.Rows = append(batch.Rows, result.Rows...)
	}

	return batch
}

// ProcessDirectory scans dir for supported documents and processes them as a
// batch.
func (s *Service) ProcessDirectory(ctx context.Context, dir string) (BatchResult, error) {
	paths, err := s.documents.ScanDirectory(dir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(paths) == 0 {
		return BatchResult{}, fmt.Errorf("no supported documents found in %s", dir)
	}
	return s.ProcessBatch(ctx, paths), nil
}
