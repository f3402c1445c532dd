package document

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// validatePDF runs a relaxed structural validation before any text
// extraction is attempted, so corrupt uploads fail with a clear message
// instead of a parser panic deep inside the read loop.
func validatePDF(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("invalid PDF %s: %w", path, err)
	}
	return nil
}

// readPDFPages extracts the text layer of each page. Pages that are null or
// fail text extraction are skipped rather than failing the document; an
// image-only page simply contributes no text.
func readPDFPages(path string) ([]PageText, error) {
	if err := validatePDF(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []PageText
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		pages = append(pages, PageText{PageNumber: pageNum, RawText: content})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}
	return pages, nil
}
