package entity

import (
	"time"
)

// PaymentType is inferred from contextual keywords on the statement line.
type PaymentType string

const (
	PaymentRegular        PaymentType = "regular"
	PaymentExtraPrincipal PaymentType = "extra-principal"
	PaymentInterestOnly   PaymentType = "interest-only"
	PaymentFee            PaymentType = "fee"
)

// PaymentRecord is one entry from the statement's payment history.
// Amount is signed; a negative amount is a refund.
type PaymentRecord struct {
	Date   time.Time   `json:"date"`
	Amount float64     `json:"amount"`
	Type   PaymentType `json:"type"`
}
