package extract

import (
	"context"
	"regexp"
	"strings"
)

// applicantMarkerRegex splits multi-applicant documents on "Applicant N"
// markers.
var applicantMarkerRegex = regexp.MustCompile(`(?i)Applicant\s+\d+`)

// minBlockLength is the shortest applicant block worth extracting from.
const minBlockLength = 30

// Engine composes the extraction strategies over immutable text. It holds no
// mutable state and is safe for concurrent use; every invocation allocates
// and returns its own result.
type Engine struct {
	recognizer EntityRecognizer
}

// NewEngine creates an extraction engine. recognizer may be nil, in which
// case the statistical name strategy contributes nothing.
func NewEngine(recognizer EntityRecognizer) *Engine {
	return &Engine{recognizer: recognizer}
}

// Extract runs the full hybrid extraction over one block of text: pattern
// fields, the best address, and at most one name. Results are built fresh on
// every call; running it twice on identical text yields identical results.
func (e *Engine) Extract(ctx context.Context, text string) Result {
	normalized := NormalizeText(text)

	result := ExtractPatterns(normalized)
	addr := ExtractAddress(normalized)
	if addr != "" {
		result[FieldAddress] = []string{addr}
	}
	result[FieldNames] = ExtractNames(ctx, normalized, addr, e.recognizer)
	return result
}

// SegmentApplicants splits page text into applicant blocks and extracts per
// block. A block qualifies only when it carries a strong identifier
// (Aadhaar, PAN, DL or voter ID); anything else is discarded without name or
// address extraction. For qualifying blocks with a detected name, a
// narrative address found near that name overrides the block's address; with
// no name, the address is dropped since it cannot be attributed.
//
// A nil return means no block qualified and the caller should fall back to
// Extract over the whole page.
func (e *Engine) SegmentApplicants(ctx context.Context, text string) []Result {
	blocks := applicantMarkerRegex.Split(text, -1)

	var results []Result
	for _, block := range blocks {
		if len(strings.TrimSpace(block)) <= minBlockLength {
			continue
		}

		normalized := NormalizeText(block)
		result := ExtractPatterns(normalized)
		if !result.HasStrongIdentifier() {
			continue
		}

		addr := ExtractAddress(normalized)
		names := ExtractNames(ctx, normalized, addr, e.recognizer)
		result[FieldNames] = names

		if len(names) > 0 {
			if near := ExtractAddressNearName(normalized, names[0]); near != "" {
				addr = near
			}
			if addr != "" {
				result[FieldAddress] = []string{addr}
			}
		}

		results = append(results, result)
	}
	return results
}

// ExtractPage is the page-level entry point: applicant segmentation first,
// whole-page hybrid extraction when no block qualifies. It always returns at
// least one result.
func (e *Engine) ExtractPage(ctx context.Context, text string) []Result {
	if results := e.SegmentApplicants(ctx, text); len(results) > 0 {
		return results
	}
	return []Result{e.Extract(ctx, text)}
}
