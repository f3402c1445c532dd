package extract

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

var (
	// nameAnchorSplitRegex splits a line at its anchor tokens; the text
	// after the last anchor is the candidate.
	nameAnchorSplitRegex = regexp.MustCompile(`(?i)NAME|APPLICANT|NOMINEE|HOLDER`)

	// idTokenRegex detects ID-shaped tokens for card-document detection.
	idTokenRegex = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}\b|\b[A-Z]{2,}\d{4,}\b`)
)

// ExtractNames pools candidates from the anchor, card-neighborhood and
// statistical strategies, merges split first/last name lines, and falls back
// to the title-case line heuristic only when everything else came up empty.
// At most one name, the first surviving candidate, is returned. The already
// extracted address is used to reject candidates that are really address
// fragments.
func ExtractNames(ctx context.Context, text, address string, recognizer EntityRecognizer) []string {
	lines := nameLines(text)
	addressLower := strings.ToLower(address)

	var candidates []string
	candidates = append(candidates, namesFromAnchors(lines, addressLower)...)
	if isCardDocument(lines) {
		candidates = append(candidates, namesFromCardNeighborhood(lines)...)
	}
	candidates = append(candidates, namesFromRecognizer(ctx, text, addressLower, recognizer)...)

	candidates = mergeAdjacentSingles(candidates)

	if len(candidates) == 0 {
		candidates = namesFromLines(lines)
	}

	candidates = dedupe(candidates)
	if len(candidates) > 1 {
		candidates = candidates[:1]
	}
	return candidates
}

// namesFromAnchors takes the text after the last NAME/APPLICANT/NOMINEE/
// HOLDER token on a line, or the next line when the remainder is too short.
// Lines carrying address keywords are skipped so "Holder Address" labels do
// not produce candidates.
func namesFromAnchors(lines []string, addressLower string) []string {
	var names []string
	for i, line := range lines {
		if containsAddressKeyword(line) {
			continue
		}
		upper := strings.ToUpper(line)
		anchored := false
		for _, anchor := range nameAnchors {
			if strings.Contains(upper, anchor) {
				anchored = true
				break
			}
		}
		if !anchored {
			continue
		}

		pieces := nameAnchorSplitRegex.Split(line, -1)
		val := strings.Trim(pieces[len(pieces)-1], " :-")
		if len(val) < 3 && i+1 < len(lines) {
			val = lines[i+1]
		}

		if validNameCandidate(val, addressLower) {
			names = append(names, titleCase(val))
		}
	}
	return names
}

// isCardDocument classifies the text as an identity-card layout: at least
// four lines of card-typical length and one ID-shaped token somewhere.
func isCardDocument(lines []string) bool {
	shortLines := 0
	idLike := false
	for _, l := range lines {
		if len(l) > 3 && len(l) < 40 {
			shortLines++
		}
		if !idLike && idTokenRegex.MatchString(l) {
			idLike = true
		}
	}
	return shortLines >= 4 && idLike
}

// namesFromCardNeighborhood inspects the three lines before and one line
// after each identity keyword, where card layouts print the holder's name.
func namesFromCardNeighborhood(lines []string) []string {
	var names []string
	for i, line := range lines {
		upper := strings.ToUpper(line)
		keyed := false
		for _, kw := range identityKeywords {
			if strings.Contains(upper, kw) {
				keyed = true
				break
			}
		}
		if !keyed {
			continue
		}

		lo := i - 3
		if lo < 0 {
			lo = 0
		}
		hi := i + 2
		if hi > len(lines) {
			hi = len(lines)
		}
		for _, w := range lines[lo:hi] {
			w = strings.TrimSpace(w)
			if !validNameCandidate(w, "") || containsAddressKeyword(w) {
				continue
			}
			names = append(names, titleCase(w))
		}
	}
	return names
}

// namesFromRecognizer accepts person-labeled spans of two or more words that
// survive the blacklist and address filters. Recognizer errors degrade to no
// candidates; the statistical strategy is best-effort by contract.
func namesFromRecognizer(ctx context.Context, text, addressLower string, recognizer EntityRecognizer) []string {
	if recognizer == nil {
		return nil
	}
	entities, err := recognizer.Recognize(ctx, text)
	if err != nil {
		return nil
	}

	var names []string
	for _, ent := range entities {
		if ent.Label != LabelPerson {
			continue
		}
		name := titleCase(strings.TrimSpace(ent.Text))
		if len(strings.Fields(name)) < 2 {
			continue
		}
		if _, banned := nameBlacklist[strings.ToUpper(name)]; banned {
			continue
		}
		if addressLower != "" && strings.Contains(addressLower, strings.ToLower(name)) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// namesFromLines is the last-resort heuristic over OCR-quality lines: short
// digit-free lines of 1-3 words, not single all-caps noise, not blacklisted
// boilerplate, exactly in title case.
func namesFromLines(lines []string) []string {
	var names []string
	for _, line := range lines {
		if len(line) < 3 || len(line) > 40 {
			continue
		}
		if strings.ContainsFunc(line, unicode.IsDigit) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 3 {
			continue
		}
		if len(words) == 1 && line == strings.ToUpper(line) {
			continue
		}
		lower := strings.ToLower(line)
		banned := false
		for _, b := range lineBlacklist {
			if strings.Contains(lower, b) {
				banned = true
				break
			}
		}
		if banned {
			continue
		}
		if line != titleCase(line) {
			continue
		}
		names = append(names, line)
	}
	return names
}

// validNameCandidate applies the shared candidate filters: length between 4
// and 34 characters, no digits, uppercased form not blacklisted and, when an
// address is known, not a substring of it.
func validNameCandidate(val, addressLower string) bool {
	if len(val) <= 3 || len(val) >= 35 {
		return false
	}
	if strings.ContainsFunc(val, unicode.IsDigit) {
		return false
	}
	if _, banned := nameBlacklist[strings.ToUpper(val)]; banned {
		return false
	}
	if addressLower != "" && strings.Contains(addressLower, strings.ToLower(val)) {
		return false
	}
	return true
}

// mergeAdjacentSingles joins two adjacent single-word alphabetic candidates
// into one name, handling cards that print first and last name on separate
// lines.
func mergeAdjacentSingles(names []string) []string {
	if len(names) == 0 {
		return names
	}
	var merged []string
	skip := false
	for i := 0; i+1 < len(names); i++ {
		if skip {
			skip = false
			continue
		}
		if isAlphaWord(names[i]) && isAlphaWord(names[i+1]) {
			merged = append(merged, names[i]+" "+names[i+1])
			skip = true
			continue
		}
		merged = append(merged, names[i])
	}
	if !skip {
		merged = append(merged, names[len(names)-1])
	}
	return merged
}

// isAlphaWord reports whether s is a single run of letters.
func isAlphaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, normalizing OCR all-caps output into presentable names.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
