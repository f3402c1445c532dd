package document

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readSpreadsheetPages treats each row of the first sheet as one page of
// text, matching how application spreadsheets lay out one record per row.
// Cells join with newlines so the line-oriented extraction heuristics see
// each cell as a line.
func readSpreadsheetPages(path string) ([]PageText, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	var pages []PageText
	for i, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		pages = append(pages, PageText{PageNumber: i + 1, RawText: strings.Join(cells, "\n")})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("spreadsheet has no content")
	}
	return pages, nil
}
