package extract

// FieldKind identifies one of the extracted PII categories.
type FieldKind string

// The nine field kinds the engine reports.
const (
	FieldPAN     FieldKind = "pan"
	FieldAadhaar FieldKind = "aadhaar"
	FieldVoterID FieldKind = "voter_id"
	FieldDL      FieldKind = "dl"
	FieldPhone   FieldKind = "phone"
	FieldEmail   FieldKind = "email"
	FieldDOB     FieldKind = "dob"
	FieldAddress FieldKind = "address"
	FieldNames   FieldKind = "names"
)

// Result maps each field kind to its extracted values, deduplicated and in
// first-seen order. A missing or empty slice means the field was not found;
// absence is never an error. The names field holds at most one value.
type Result map[FieldKind][]string

// strongIdentifiers are the field kinds that qualify an applicant block.
var strongIdentifiers = []FieldKind{FieldAadhaar, FieldPAN, FieldDL, FieldVoterID}

// HasStrongIdentifier reports whether the result contains at least one
// Aadhaar, PAN, driving license or voter ID match.
func (r Result) HasStrongIdentifier() bool {
	for _, kind := range strongIdentifiers {
		if len(r[kind]) > 0 {
			return true
		}
	}
	return false
}

// First returns the first value for the given field kind, or "" if the field
// is empty.
func (r Result) First(kind FieldKind) string {
	if values := r[kind]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// dedupe removes duplicate values preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
