package extract

import (
	"regexp"
	"strings"
)

// Keyword tables used across the extraction strategies. All of them are
// fixed configuration data; nothing here is mutated at runtime.

// addressKeywords mark a line as starting or continuing an address block.
// r/o, s/o and d/o are the Hindi relation abbreviations commonly seen on
// Indian identity paperwork.
var addressKeywords = []string{
	"address", "addr", "r/o", "s/o", "d/o", "resident", "residence", "location",
	"flat", "floor", "building", "block", "sector", "lane", "road",
	"rd", "street", "st", "area", "locality", "village", "po", "ps",
	"dist", "near", "opp", "thikana",
}

// indianStates is the 28-entry state list used by the address scorer and the
// name blacklist.
var indianStates = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar",
	"chhattisgarh", "delhi", "goa", "gujarat", "haryana",
	"himachal pradesh", "jharkhand", "karnataka", "kerala",
	"madhya pradesh", "maharashtra", "manipur", "meghalaya",
	"mizoram", "nagaland", "odisha", "punjab", "rajasthan",
	"sikkim", "tamil nadu", "telangana", "tripura",
	"uttar pradesh", "uttarakhand", "west bengal",
}

// localityKeywords contribute a plausibility point when they appear inside a
// candidate address.
var localityKeywords = []string{
	"road", "rd", "street", "st", "sector", "block",
	"flat", "floor", "apartment", "lane",
}

// nameAnchors are the labels a name is expected to follow on forms.
var nameAnchors = []string{"NAME", "APPLICANT", "NOMINEE", "HOLDER"}

// identityKeywords mark the neighborhood of a card holder's name on
// identity-card layouts.
var identityKeywords = []string{
	"DOB", "DATE OF BIRTH", "BIRTH", "SEX", "GENDER", "VALID", "ISSUE", "EXPIRY",
}

// lineBlacklist rejects boilerplate lines during the last-resort name scan.
var lineBlacklist = []string{
	"government", "india", "uidai", "income", "tax",
	"department", "address", "male", "female",
	"year", "birth", "dob",
}

// nameBlacklist holds uppercased terms that can never be a person's name:
// government and tax boilerplate, relation and gender words, and the Indian
// states.
var nameBlacklist = buildNameBlacklist()

func buildNameBlacklist() map[string]struct{} {
	terms := []string{
		"INDIA", "GOVT", "INCOME", "TAX", "UNIQUE", "AUTHORITY",
		"FATHER", "MOTHER", "MALE", "FEMALE",
	}
	blacklist := make(map[string]struct{}, len(terms)+len(indianStates))
	for _, t := range terms {
		blacklist[t] = struct{}{}
	}
	for _, s := range indianStates {
		blacklist[strings.ToUpper(s)] = struct{}{}
	}
	return blacklist
}

var (
	pinRegex = regexp.MustCompile(`\b\d{6}\b`)

	// addressKeywordRegex matches any address keyword as a whole word.
	addressKeywordRegex = compileKeywordAlternation(addressKeywords)
)

// compileKeywordAlternation builds a case-insensitive whole-word alternation
// from a keyword list.
func compileKeywordAlternation(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// containsState reports whether any Indian state name appears in the text
// (case-insensitive substring match).
func containsState(text string) bool {
	lower := strings.ToLower(text)
	for _, s := range indianStates {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// containsAddressKeyword reports whether any address keyword appears as a
// substring of the line, ignoring case.
func containsAddressKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
