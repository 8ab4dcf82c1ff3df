package screening

// Reason is one entry of the fixed exclusion-reason table.
type Reason struct {
	Code  string
	Label string
}

// Reasons is the exclusion-reason table, in prompt order. Code "5" asks the
// reviewer for free-text detail, but only the literal label "other" is ever
// persisted to the working copy.
var Reasons = []Reason{
	{Code: "1", Label: "non-paper"},
	{Code: "2", Label: "survey or review"},
	{Code: "3", Label: "non-english"},
	{Code: "4", Label: "not auditing OF AI"},
	{Code: "5", Label: "other"},
}

// ReasonByCode returns the reason for a prompt code, or ok=false when the
// code is not in the table.
func ReasonByCode(code string) (Reason, bool) {
	for _, r := range Reasons {
		if r.Code == code {
			return r, true
		}
	}
	return Reason{}, false
}
