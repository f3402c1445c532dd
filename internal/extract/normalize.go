package extract

import (
	"regexp"
	"strings"
)

var (
	// separatorLineRegex matches decorative rules made of dashes,
	// underscores or dots, as commonly produced by OCR over form layouts.
	separatorLineRegex = regexp.MustCompile(`[-_]{5,}|\.{5,}`)

	excessNewlineRegex = regexp.MustCompile(`\n{3,}`)
	excessSpaceRegex   = regexp.MustCompile(`\s{2,}`)
)

// NormalizeText strips decorative separator lines and collapses runs of
// blank lines in raw page text. It is a pure, total function and is
// idempotent: normalizing already-normalized text is a no-op.
func NormalizeText(text string) string {
	text = separatorLineRegex.ReplaceAllString(text, "\n")
	text = excessNewlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// CleanAddress tidies a captured address candidate: separator fragments are
// removed, stray punctuation is trimmed and internal whitespace collapsed.
func CleanAddress(addr string) string {
	if addr == "" {
		return addr
	}
	addr = separatorLineRegex.ReplaceAllString(addr, "")
	addr = strings.Trim(addr, " .,-:")
	addr = excessSpaceRegex.ReplaceAllString(addr, " ")
	return strings.TrimSpace(addr)
}

// trimmedLines splits text into trimmed, non-empty lines.
func trimmedLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// nameLines splits text into the line form the name strategies operate on:
// trimmed, with quote characters removed and leading/trailing commas
// stripped.
func nameLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		l = strings.ReplaceAll(l, `"`, "")
		l = strings.Trim(l, ", ")
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
