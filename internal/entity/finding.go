package entity

import (
	"time"
)

// IssueType is the closed set of servicing problems the audit can surface.
type IssueType string

// Stable values (these exact strings are persisted and exported).
const (
	IssueExcessiveForbearance      IssueType = "excessive-forbearance"
	IssueUnexplainedCapitalization IssueType = "unexplained-capitalization"
	IssueExtendedNonPayment        IssueType = "extended-non-payment"
	IssueHighInterestRate          IssueType = "high-interest-rate"
	IssueInaccurateBalance         IssueType = "inaccurate-balance"
	IssueMisappliedPayment         IssueType = "misapplied-payment"
)

// Severity is an ordered classification of how urgently a finding warrants
// borrower action.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityLow:      "low",
	SeverityModerate: "moderate",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AuditFinding is one potential servicing error surfaced by a rule.
type AuditFinding struct {
	IssueType       IssueType   `json:"issue_type"`
	RuleCode        string      `json:"rule_code"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	SuggestedAction string      `json:"suggested_action"`
	Severity        Severity    `json:"severity"`
	AffectedDates   []time.Time `json:"affected_dates,omitempty"`
	DocsRef         *string     `json:"docs_ref,omitempty"`
}

// Equal compares two findings by identity fields only. Affected dates are
// reconstructed on every run, so they are excluded from equality.
func (f AuditFinding) Equal(o AuditFinding) bool {
	return f.IssueType == o.IssueType &&
		f.RuleCode == o.RuleCode &&
		f.Title == o.Title &&
		f.Description == o.Description &&
		f.SuggestedAction == o.SuggestedAction &&
		f.Severity == o.Severity
}
