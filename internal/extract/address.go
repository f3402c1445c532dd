package extract

import (
	"regexp"
	"strings"
)

var (
	// addressLabelRegex anchors the strict label-block strategy.
	addressLabelRegex = regexp.MustCompile(`(?i)\baddress\b\s*[:\-]?\s*(.+)`)

	// addressStopRegex ends a label block: the next labeled field has begun.
	addressStopRegex = regexp.MustCompile(`(?i)\b(?:pan|aadhaar|dob|gender|mobile|email|name|signature|date)\b`)

	// keywordStopRegex ends heuristic capture when an ID field shows up.
	keywordStopRegex = regexp.MustCompile(`\b(?:PAN|AADHAAR|DOB)\b`)

	// addressLabelPrefixRegex strips the label itself from a captured line.
	addressLabelPrefixRegex = regexp.MustCompile(`(?i)(?:address|location|thikana)\s*[:,-]*`)

	// narrativeAddressRegex matches prose addresses up to the sentence end.
	narrativeAddressRegex = regexp.MustCompile(`(?i)(?:residing at|resident of|living at)\s+(.+?)(?:\.|\n)`)

	// narrativeVerbRegex flags descriptive prose masquerading as an address.
	narrativeVerbRegex = regexp.MustCompile(`\b(?:was|were|is|are|access|affected|revealed|analysis)\b`)
)

// minAddressLength is the shortest candidate the scorer will even consider.
const minAddressLength = 15

// addressStrategy produces a validated address candidate or "".
type addressStrategy func(text string) string

// addressStrategies is the precedence order: the first strategy returning a
// non-empty result wins and the rest are not consulted.
var addressStrategies = []addressStrategy{
	addressFromLabel,
	addressFromNarrative,
	addressFromKeywords,
}

// ExtractAddress returns the single best address in the text, or "" when no
// strategy produces a plausible candidate.
func ExtractAddress(text string) string {
	for _, strategy := range addressStrategies {
		if addr := strategy(text); addr != "" {
			return addr
		}
	}
	return ""
}

// addressFromLabel captures the text after an "Address" label plus the
// following lines until another labeled field or a too-short line appears.
// Accepted on length alone; an explicit label is a strong enough signal.
func addressFromLabel(text string) string {
	lines := trimmedLines(text)
	for i, line := range lines {
		m := addressLabelRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var parts []string
		if first := strings.TrimSpace(m[1]); first != "" {
			parts = append(parts, first)
		}
		for j := i + 1; j < len(lines); j++ {
			if addressStopRegex.MatchString(lines[j]) || len(lines[j]) < 4 {
				break
			}
			parts = append(parts, lines[j])
		}

		if addr := CleanAddress(strings.Join(parts, " ")); len(addr) > minAddressLength {
			return addr
		}
	}
	return ""
}

// addressFromNarrative captures prose of the form "residing at ..." and
// accepts it only if the plausibility scorer does.
func addressFromNarrative(text string) string {
	m := narrativeAddressRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	addr := CleanAddress(m[1])
	if !plausibleAddress(addr) {
		return ""
	}
	return addr
}

// addressFromKeywords starts capturing at the first line bearing an address
// keyword and stops on an ID field, right after a PIN code, or after a line
// naming an Indian state when the next line carries no PIN.
func addressFromKeywords(text string) string {
	lines := trimmedLines(text)
	var parts []string
	capturing := false

	for i, line := range lines {
		if !capturing {
			if !addressKeywordRegex.MatchString(line) {
				continue
			}
			capturing = true
			if clean := strings.TrimSpace(addressLabelPrefixRegex.ReplaceAllString(line, "")); clean != "" {
				parts = append(parts, clean)
			}
			continue
		}

		if keywordStopRegex.MatchString(strings.ToUpper(line)) {
			break
		}
		parts = append(parts, line)
		if pinRegex.MatchString(line) {
			break
		}
		if containsState(line) && i+1 < len(lines) && !pinRegex.MatchString(lines[i+1]) {
			break
		}
	}

	addr := CleanAddress(strings.Join(parts, " "))
	if !plausibleAddress(addr) {
		return ""
	}
	return addr
}

// ExtractAddressNearName searches a window from 200 characters before to 500
// characters after the first occurrence of name for a narrative address. The
// candidate is cleaned but not scored; proximity to a known name is the
// attribution signal applicant segmentation relies on.
func ExtractAddressNearName(text, name string) string {
	if name == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(name))
	if idx < 0 {
		return ""
	}

	start := idx - 200
	if start < 0 {
		start = 0
	}
	end := idx + 500
	if end > len(text) {
		end = len(text)
	}

	m := narrativeAddressRegex.FindStringSubmatch(text[start:end])
	if m == nil {
		return ""
	}
	return CleanAddress(m[1])
}

// plausibleAddress scores a candidate: +2 for a 6-digit PIN code, +1 for an
// Indian state name, +1 for a locality keyword, -2 for narrative verb forms.
// Candidates shorter than 15 characters are rejected outright; everything
// else needs a score of at least 2.
func plausibleAddress(addr string) bool {
	if len(addr) < minAddressLength {
		return false
	}

	score := 0
	lower := strings.ToLower(addr)

	if pinRegex.MatchString(addr) {
		score += 2
	}
	if containsState(lower) {
		score++
	}
	for _, kw := range localityKeywords {
		if strings.Contains(lower, kw) {
			score++
			break
		}
	}
	if narrativeVerbRegex.MatchString(lower) {
		score -= 2
	}

	return score >= 2
}
