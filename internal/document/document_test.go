package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// writeZipFile creates a minimal ZIP archive containing the named entries.
func writeZipFile(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for entry, content := range entries {
		ew, err := w.Create(entry)
		if err != nil {
			t.Fatalf("failed to create zip entry: %v", err)
		}
		if _, err := ew.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write zip entry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	return path
}

func TestIdentify_ByExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected DocType
	}{
		{"report.pdf", TypePDF},
		{"report.PDF", TypePDF},
		{"letter.docx", TypeDOCX},
		{"sheet.xlsx", TypeSpreadsheet},
		{"sheet.xls", TypeSpreadsheet},
		{"notes.txt", TypeText},
		{"notes.text", TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Identify(tt.path); got != tt.expected {
				t.Errorf("Identify(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIdentify_BySniffing(t *testing.T) {
	tempDir := t.TempDir()

	pdfPath := writeFile(t, tempDir, "misnamed.bin", []byte("%PDF-1.4\nfake body"))
	if got := Identify(pdfPath); got != TypePDF {
		t.Errorf("expected sniffed PDF, got %q", got)
	}

	docxPath := writeZipFile(t, tempDir, "misnamed.dat", map[string]string{
		"word/document.xml": "<w:document/>",
	})
	if got := Identify(docxPath); got != TypeDOCX {
		t.Errorf("expected sniffed DOCX, got %q", got)
	}

	xlsxPath := writeZipFile(t, tempDir, "misnamed.blob", map[string]string{
		"xl/workbook.xml": "<workbook/>",
	})
	if got := Identify(xlsxPath); got != TypeSpreadsheet {
		t.Errorf("expected sniffed spreadsheet, got %q", got)
	}

	junkPath := writeFile(t, tempDir, "junk.bin", []byte("random bytes"))
	if got := Identify(junkPath); got != TypeUnsupported {
		t.Errorf("expected unsupported, got %q", got)
	}
}

func TestIdentify_MissingFile(t *testing.T) {
	if got := Identify("/no/such/file.bin"); got != TypeUnsupported {
		t.Errorf("expected unsupported for missing file, got %q", got)
	}
}
