package pii

import (
	"regexp"
	"strings"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/document"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/extract"
)

// Row is one flattened PII record: one qualifying applicant block on one
// page. Multi-value fields are joined with ", ". Rows are immutable once
// returned.
type Row struct {
	FileName        string `json:"file_name"`
	UserName        string `json:"user_name"`
	PageNumber      int    `json:"page_number"`
	OccurrenceCount int    `json:"occurrence_count"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Aadhaar         string `json:"aadhaar"`
	PAN             string `json:"pan"`
	Address         string `json:"address"`
	DL              string `json:"dl"`
	VoterID         string `json:"voter_id"`
	DOB             string `json:"dob"`
}

// hasContent reports whether any field beyond the file name, page number and
// occurrence count is populated. Content-free rows are not emitted.
func (r Row) hasContent() bool {
	return r.UserName != "" || r.Phone != "" || r.Email != "" ||
		r.Aadhaar != "" || r.PAN != "" || r.Address != "" ||
		r.DL != "" || r.VoterID != "" || r.DOB != ""
}

// BuildRows flattens the per-block extraction results of one page into rows,
// dropping any row with no content.
func BuildRows(fileName string, page document.PageText, results []extract.Result) []Row {
	var rows []Row
	for _, res := range results {
		name := res.First(extract.FieldNames)
		row := Row{
			FileName:        fileName,
			UserName:        name,
			PageNumber:      page.PageNumber,
			OccurrenceCount: occurrenceCount(name, page.RawText),
			Phone:           joinValues(res[extract.FieldPhone]),
			Email:           joinValues(res[extract.FieldEmail]),
			Aadhaar:         joinValues(res[extract.FieldAadhaar]),
			PAN:             joinValues(res[extract.FieldPAN]),
			Address:         joinValues(res[extract.FieldAddress]),
			DL:              joinValues(res[extract.FieldDL]),
			VoterID:         joinValues(res[extract.FieldVoterID]),
			DOB:             joinValues(res[extract.FieldDOB]),
		}
		if row.hasContent() {
			rows = append(rows, row)
		}
	}
	return rows
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

// occurrenceCount counts case-insensitive whole-word occurrences of the name
// in the page's raw text, with a floor of one so a detected name always
// registers.
func occurrenceCount(name, text string) int {
	if name == "" {
		return 1
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return 1
	}
	count := len(re.FindAllStringIndex(text, -1))
	if count < 1 {
		count = 1
	}
	return count
}
