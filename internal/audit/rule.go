package audit

import (
	"loan-audit/internal/entity"
	"loan-audit/internal/policy"
)

// Rule is one independent audit check. Implementations are pure and must
// never panic: they either return a finding or nil, there is no error
// channel.
type Rule interface {
	RuleCode() string
	Title() string
	DocsRef() string
	Evaluate(rec *entity.LoanRecord) *entity.AuditFinding
}

// DefaultRules returns every built-in rule wired to the given policy, in
// stable registration order.
func DefaultRules(p policy.Policy) []Rule {
	return []Rule{
		ExcessiveForbearanceRule{Policy: p},
		UnexplainedCapitalizationRule{Policy: p},
		ExtendedNonPaymentRule{Policy: p},
		HighInterestRateRule{Policy: p},
	}
}
