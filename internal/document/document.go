package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
)

// DocType classifies a document by the reader that can handle it.
type DocType string

// Supported document types. Images are deliberately absent: rasterization
// and OCR belong to an external collaborator, so image files classify as
// unsupported here.
const (
	TypePDF         DocType = "pdf"
	TypeDOCX        DocType = "docx"
	TypeSpreadsheet DocType = "spreadsheet"
	TypeText        DocType = "text"
	TypeUnsupported DocType = "unsupported"
)

// PageText is one page of raw text produced by a document reader. It is the
// immutable input to the extraction engine.
type PageText struct {
	PageNumber int    `json:"page_number"`
	RawText    string `json:"raw_text"`
}

// extensionTypes maps known file extensions to their document type.
var extensionTypes = map[string]DocType{
	".pdf":  TypePDF,
	".docx": TypeDOCX,
	".xlsx": TypeSpreadsheet,
	".xls":  TypeSpreadsheet,
	".txt":  TypeText,
	".text": TypeText,
}

// Identify classifies a file by extension first and by content sniffing
// second, so misnamed uploads still resolve to the right reader.
func Identify(path string) DocType {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return sniffContent(path)
}

// sniffContent inspects magic bytes: %PDF for PDFs, a ZIP signature for the
// office container formats (distinguished by their well-known entries).
func sniffContent(path string) DocType {
	f, err := os.Open(path)
	if err != nil {
		return TypeUnsupported
	}
	defer f.Close()

	header := make([]byte, 4)
	if _, err := f.Read(header); err != nil {
		return TypeUnsupported
	}

	switch {
	case strings.HasPrefix(string(header), "%PDF"):
		return TypePDF
	case header[0] == 'P' && header[1] == 'K':
		return sniffZipContainer(path)
	}
	return TypeUnsupported
}

// sniffZipContainer distinguishes DOCX from XLSX by the archive entries that
// define each format.
func sniffZipContainer(path string) DocType {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return TypeUnsupported
	}
	defer reader.Close()

	for _, file := range reader.File {
		switch file.Name {
		case "word/document.xml":
			return TypeDOCX
		case "xl/workbook.xml":
			return TypeSpreadsheet
		}
	}
	return TypeUnsupported
}
