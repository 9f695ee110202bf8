package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusDeclined TransactionStatus = "DECLINED"
	StatusVoided   TransactionStatus = "VOIDED"
	StatusError    TransactionStatus = "ERROR"
)

// DefaultCurrency is applied when the caller does not name one.
const DefaultCurrency = "COP"

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusVoided, StatusError:
		return true
	}
	return false
}

// Transaction is a payment transaction as the rest of the system sees it.
// It carries no knowledge of how it is stored.
// Optional values use nil for "absent".
type Transaction struct {
	ID                 string
	CustomerID         string
	CustomerEmail      string
	AmountInCents      int64
	Currency           string
	Status             TransactionStatus
	Reference          string
	AcceptanceToken    string
	AcceptPersonalAuth string

	PaymentMethod   map[string]any
	ShippingAddress map[string]any
	Metadata        map[string]any

	WompiTransactionID  *string
	RedirectURL         *string
	PaymentLinkID       *string
	CustomerFullName    *string
	CustomerPhoneNumber *string
	ErrorMessage        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewTransactionParams struct {
	ID                 string
	CustomerID         string
	CustomerEmail      string
	AmountInCents      int64
	Currency           string
	Reference          string
	AcceptanceToken    string
	AcceptPersonalAuth string

	PaymentMethod   map[string]any
	ShippingAddress map[string]any
	Metadata        map[string]any

	RedirectURL         *string
	PaymentLinkID       *string
	CustomerFullName    *string
	CustomerPhoneNumber *string
}

// NewTransaction builds a pending transaction, generating an id and applying
// the default currency when they are not given. Timestamps are left zero; the
// repository assigns them on save.
func NewTransaction(p NewTransactionParams) Transaction {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return Transaction{
		ID:                  id,
		CustomerID:          p.CustomerID,
		CustomerEmail:       p.CustomerEmail,
		AmountInCents:       p.AmountInCents,
		Currency:            currency,
		Status:              StatusPending,
		Reference:           p.Reference,
		AcceptanceToken:     p.AcceptanceToken,
		AcceptPersonalAuth:  p.AcceptPersonalAuth,
		PaymentMethod:       p.PaymentMethod,
		ShippingAddress:     p.ShippingAddress,
		Metadata:            p.Metadata,
		RedirectURL:         p.RedirectURL,
		PaymentLinkID:       p.PaymentLinkID,
		CustomerFullName:    p.CustomerFullName,
		CustomerPhoneNumber: p.CustomerPhoneNumber,
	}
}
