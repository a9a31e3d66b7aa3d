package extract

import (
	"math"
	"sort"
	"strings"
	"time"

	"loan-audit/constants"
	"loan-audit/internal/entity"
	"loan-audit/internal/textparse"
)

// Tolerances for treating two payment entries as the same transaction
// printed twice (running-balance tables, carried-over pages).
const (
	paymentDateTolerance   = 24 * time.Hour
	paymentAmountTolerance = 0.01
)

// extractPayments locates the payment-history section (falling back to the
// whole document), keeps lines carrying both a date and a currency amount,
// classifies each entry, deduplicates, and returns them sorted ascending.
func (p *Pipeline) extractPayments(lines []string) []entity.PaymentRecord {
	section := p.paymentSection(lines)

	var found []entity.PaymentRecord
	for _, line := range section {
		dates := p.scanDates(line)
		if len(dates) == 0 {
			continue
		}
		amount := textparse.ParseCurrency(line)
		if amount == nil {
			continue
		}
		found = append(found, entity.PaymentRecord{
			Date:   dates[0],
			Amount: *amount,
			Type:   classifyPayment(line),
		})
	}

	kept := DedupPayments(found)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })
	return kept
}

func (p *Pipeline) paymentSection(lines []string) []string {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range constants.PaymentSectionKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			end := i + 1
			for end < len(lines) && !textparse.IsSectionBoundary(lines[end]) {
				end++
			}
			if end > i+1 {
				return lines[i+1 : end]
			}
		}
	}
	return lines
}

func classifyPayment(line string) entity.PaymentType {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "principal"):
		return entity.PaymentExtraPrincipal
	case strings.Contains(lower, "interest"):
		return entity.PaymentInterestOnly
	case strings.Contains(lower, "fee"), strings.Contains(lower, "charge"), strings.Contains(lower, "penalty"):
		return entity.PaymentFee
	default:
		return entity.PaymentRegular
	}
}

// DedupPayments drops entries whose date is within one day and amount
// within a cent of an already-kept entry. Idempotent: applying it to its
// own output removes nothing further.
func DedupPayments(in []entity.PaymentRecord) []entity.PaymentRecord {
	kept := make([]entity.PaymentRecord, 0, len(in))
	for _, cand := range in {
		dup := false
		for _, k := range kept {
			dateDelta := cand.Date.Sub(k.Date)
			if dateDelta < 0 {
				dateDelta = -dateDelta
			}
			if dateDelta <= paymentDateTolerance && math.Abs(cand.Amount-k.Amount) <= paymentAmountTolerance {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, cand)
		}
	}
	return kept
}
