package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

// documentXML mirrors the parts of word/document.xml needed for text
// extraction: paragraphs of runs of text elements.
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

// readDOCXPages extracts paragraph text from a DOCX archive. Word documents
// carry no page boundaries in their XML, so the whole document is one page.
func readDOCXPages(path string) ([]PageText, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open document.xml: %w", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read document.xml: %w", err)
		}

		text, err := parseDocumentXML(content)
		if err != nil {
			return nil, err
		}
		return []PageText{{PageNumber: 1, RawText: text}}, nil
	}

	return nil, fmt.Errorf("not a DOCX file: missing word/document.xml")
}

// parseDocumentXML joins every paragraph's text runs, one paragraph per
// line.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}

	var b []byte
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b = append(b, '\n')
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				b = append(b, text.Content...)
			}
		}
	}
	return string(b), nil
}
