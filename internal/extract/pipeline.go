package extract

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"loan-audit/internal/entity"
	"loan-audit/internal/normalize"
	"loan-audit/internal/textparse"
)

// Scan windows and acceptance bounds shared by the field extractors.
const (
	headerWindowLines  = 30
	balanceWindowLines = 10

	minAcceptedBalance = 100.0
	maxAcceptedBalance = 500000.0

	rateMin = 0.0
	rateMax = 20.0
)

// Date validity window around the system date. Dates outside are discarded
// during extraction, never stored.
const (
	windowPastYears   = 25
	windowFutureYears = 30
)

// Pipeline turns raw per-page statement text into a LoanRecord. It holds
// no per-document state; one Pipeline is safe for concurrent use.
type Pipeline struct {
	Logger *slog.Logger
	Dates  *textparse.DateParser
	Now    func() time.Time
}

func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Logger: logger,
		Dates:  textparse.NewDateParser(),
		Now:    time.Now,
	}
}

// Extract runs the full pipeline: normalize, field extractors, sequence
// extractors, then record assembly. Required-field failures abort the
// whole extraction; no partial record is ever returned.
func (p *Pipeline) Extract(pages []string) (*entity.LoanRecord, error) {
	doc, err := normalize.Pages(pages)
	if err != nil {
		return nil, err
	}
	lines := doc.Lines()
	p.Logger.Info("extract.start", "pages", len(pages), "lines", len(lines))

	servicer, err := p.extractServicer(lines)
	if err != nil {
		return nil, err
	}
	account := p.extractAccountID(lines)
	rate, err := p.extractInterestRate(lines)
	if err != nil {
		return nil, err
	}
	balance, err := p.extractBalance(lines)
	if err != nil {
		return nil, err
	}
	start, end, err := p.extractLoanDates(lines)
	if err != nil {
		return nil, err
	}

	payments := p.extractPayments(lines)
	periods := p.extractNonPaymentPeriods(doc)
	caps := p.extractCapitalizationDates(doc.Text())

	principal := p.extractPrincipal(lines)
	if principal == nil {
		est := estimatePrincipal(balance, payments)
		principal = &est
		p.Logger.Info("extract.principal.estimated", "estimate", est)
	}

	rec := &entity.LoanRecord{
		ServicerName:        servicer,
		AccountNumber:       account,
		InterestRate:        rate,
		CurrentBalance:      balance,
		OriginalPrincipal:   principal,
		StartDate:           start,
		EndDate:             end,
		NonPaymentPeriods:   periods,
		Payments:            payments,
		CapitalizationDates: caps,
	}
	p.Logger.Info("extract.ok",
		"servicer", servicer,
		"payments", len(payments),
		"non_payment_periods", len(periods),
		"capitalization_events", len(caps),
	)
	return rec, nil
}

// estimatePrincipal reconstructs a missing original principal as the
// current balance plus 80% of everything paid so far (roughly 20% of
// historical payments went to interest), rounded to the nearest 500.
// No sanity bound is applied; refund-heavy histories can produce an
// estimate below the current balance.
func estimatePrincipal(balance float64, payments []entity.PaymentRecord) float64 {
	var sum float64
	for _, pm := range payments {
		sum += pm.Amount
	}
	return math.Round((balance+0.8*sum)/500) * 500
}

// lowerASCII folds ASCII letters only, leaving every other rune intact.
// The keyword tables are all ASCII, and unlike strings.ToLower this keeps
// byte offsets valid for slicing the original line.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func (p *Pipeline) windowBounds() (time.Time, time.Time) {
	now := p.Now()
	return now.AddDate(-windowPastYears, 0, 0), now.AddDate(windowFutureYears, 0, 0)
}

func (p *Pipeline) inWindow(t time.Time) bool {
	lo, hi := p.windowBounds()
	return !t.Before(lo) && !t.After(hi)
}

// scanDates extracts dates from free text, keeping only those inside the
// validity window, in textual order.
func (p *Pipeline) scanDates(text string) []time.Time {
	raw := p.Dates.ScanText(text)
	out := raw[:0:0]
	for _, t := range raw {
		if p.inWindow(t) {
			out = append(out, t)
		}
	}
	return out
}
