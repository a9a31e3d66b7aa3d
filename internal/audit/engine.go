package audit

import (
	"log/slog"
	"sync"

	"loan-audit/internal/entity"
)

// Engine runs a fixed set of rules against one loan record. Rules are
// pure and independent; the engine never fails, it only collects whatever
// findings the rules return.
type Engine struct {
	Logger *slog.Logger
	rules  []Rule
}

func NewEngine(logger *slog.Logger, rules ...Rule) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Logger: logger, rules: rules}
}

// Rules returns the registered rules in registration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Run evaluates every rule sequentially and returns the findings in rule
// registration order. An empty result means no issues were found, which
// is a meaningful outcome, not an error.
func (e *Engine) Run(rec *entity.LoanRecord) []entity.AuditFinding {
	findings := make([]entity.AuditFinding, 0, len(e.rules))
	for _, rule := range e.rules {
		if f := rule.Evaluate(rec); f != nil {
			findings = append(findings, *f)
			e.Logger.Info("audit.finding",
				"rule_code", rule.RuleCode(),
				"severity", f.Severity.String(),
			)
		}
	}
	e.Logger.Info("audit.ok", "rules", len(e.rules), "findings", len(findings))
	return findings
}

// RunParallel fans each rule out to its own goroutine and joins once all
// complete. Finding order is not guaranteed; callers that need a
// deterministic order should sort by rule code.
func (e *Engine) RunParallel(rec *entity.LoanRecord) []entity.AuditFinding {
	results := make(chan *entity.AuditFinding, len(e.rules))

	var wg sync.WaitGroup
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r Rule) {
			defer wg.Done()
			results <- r.Evaluate(rec)
		}(rule)
	}
	wg.Wait()
	close(results)

	findings := make([]entity.AuditFinding, 0, len(e.rules))
	for f := range results {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	e.Logger.Info("audit.ok", "rules", len(e.rules), "findings", len(findings), "mode", "parallel")
	return findings
}
