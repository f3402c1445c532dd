package extract

import (
	"regexp"
	"strings"
)

// fieldPatterns holds the fixed-format regular expressions for the pattern
// detected fields. PAN, Aadhaar, Voter ID and DL follow the formats issued
// by the respective Indian authorities; phone accepts the mobile prefixes
// 6-9 with an optional +91 country code.
var fieldPatterns = map[FieldKind]*regexp.Regexp{
	FieldPAN:     regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`),
	FieldAadhaar: regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`),
	FieldVoterID: regexp.MustCompile(`\b[A-Z]{3}[0-9]{7}\b`),
	FieldDL:      regexp.MustCompile(`\b[A-Z]{2}[ -]?[0-9]{2}(?:[ -]?[0-9]{4}){2,3}\b`),
	FieldPhone:   regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{4}[\s-]?\d{5}`),
	FieldEmail:   regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
}

var (
	// dobNarrativeRegex matches prose like "born on 12 April 1990".
	dobNarrativeRegex = regexp.MustCompile(`(?i)\b(?:born on|date of birth|dob)\s+(\d{1,2}\s+[A-Za-z]+\s+\d{4})`)
	// dobLabeledRegex matches a DOB label followed by a numeric date.
	dobLabeledRegex = regexp.MustCompile(`(?i)(?:DOB|Date of Birth|Birth)[:\s-]*(\d{2}[/-]\d{2}[/-]\d{2,4})`)
	// dobBareRegex matches any bare dd/mm/yyyy or dd-mm-yyyy date.
	dobBareRegex = regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ExtractPatterns applies the fixed-format field patterns to normalized
// text. Matches are deduplicated per field, phone numbers are normalized to
// bare 10-digit form and the date of birth is resolved by precedence.
// Address and name fields are not populated here.
func ExtractPatterns(text string) Result {
	result := Result{}
	for kind, re := range fieldPatterns {
		result[kind] = dedupe(re.FindAllString(text, -1))
	}
	result[FieldPhone] = normalizePhones(result[FieldPhone])
	result[FieldDOB] = extractDOB(text)
	return result
}

// normalizePhones strips non-digits, drops a leading 91 country code from
// 12-digit values and keeps only numbers that reduce to exactly 10 digits.
func normalizePhones(matches []string) []string {
	var phones []string
	for _, m := range matches {
		digits := nonDigitRegex.ReplaceAllString(m, "")
		if len(digits) == 12 && strings.HasPrefix(digits, "91") {
			digits = digits[2:]
		}
		if len(digits) == 10 {
			phones = append(phones, digits)
		}
	}
	return dedupe(phones)
}

// extractDOB resolves the date of birth by precedence: narrative phrasing
// wins over a labeled numeric date, which wins over the first bare numeric
// date anywhere in the text. The first rule that matches anything decides.
func extractDOB(text string) []string {
	if m := dobNarrativeRegex.FindStringSubmatch(text); m != nil {
		return []string{m[1]}
	}
	if m := dobLabeledRegex.FindStringSubmatch(text); m != nil {
		return []string{m[1]}
	}
	if m := dobBareRegex.FindString(text); m != "" {
		return []string{m}
	}
	return nil
}
