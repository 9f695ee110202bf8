package httpapi

import (
	"fmt"
	"time"

	"payment-transactions/internal/domain"
)

type createTransactionRequest struct {
	ID                  string         `json:"id" binding:"omitempty,uuid"`
	CustomerID          string         `json:"customerId" binding:"required,max=36"`
	CustomerEmail       string         `json:"customerEmail" binding:"required,email,max=255"`
	AmountInCents       int64          `json:"amountInCents" binding:"gte=0"`
	Currency            string         `json:"currency" binding:"omitempty,len=3"`
	Reference           string         `json:"reference" binding:"required,max=100"`
	AcceptanceToken     string         `json:"acceptanceToken" binding:"required"`
	AcceptPersonalAuth  string         `json:"acceptPersonalAuth" binding:"required"`
	PaymentMethod       map[string]any `json:"paymentMethod"`
	ShippingAddress     map[string]any `json:"shippingAddress"`
	Metadata            map[string]any `json:"metadata"`
	RedirectURL         *string        `json:"redirectUrl" binding:"omitempty,url"`
	PaymentLinkID       *string        `json:"paymentLinkId" binding:"omitempty,max=100"`
	CustomerFullName    *string        `json:"customerFullName" binding:"omitempty,max=255"`
	CustomerPhoneNumber *string        `json:"customerPhoneNumber" binding:"omitempty,max=50"`
}

func (r createTransactionRequest) toDomain() domain.Transaction {
	return domain.NewTransaction(domain.NewTransactionParams{
		ID:                  r.ID,
		CustomerID:          r.CustomerID,
		CustomerEmail:       r.CustomerEmail,
		AmountInCents:       r.AmountInCents,
		Currency:            r.Currency,
		Reference:           r.Reference,
		AcceptanceToken:     r.AcceptanceToken,
		AcceptPersonalAuth:  r.AcceptPersonalAuth,
		PaymentMethod:       r.PaymentMethod,
		ShippingAddress:     r.ShippingAddress,
		Metadata:            r.Metadata,
		RedirectURL:         r.RedirectURL,
		PaymentLinkID:       r.PaymentLinkID,
		CustomerFullName:    r.CustomerFullName,
		CustomerPhoneNumber: r.CustomerPhoneNumber,
	})
}

// updateTransactionRequest carries the fields that change after creation.
// Omitted fields keep their stored value.
type updateTransactionRequest struct {
	Status             *string        `json:"status"`
	WompiTransactionID *string        `json:"wompiTransactionId" binding:"omitempty,max=100"`
	RedirectURL        *string        `json:"redirectUrl" binding:"omitempty,url"`
	PaymentLinkID      *string        `json:"paymentLinkId" binding:"omitempty,max=100"`
	ErrorMessage       *string        `json:"errorMessage"`
	PaymentMethod      map[string]any `json:"paymentMethod"`
	Metadata           map[string]any `json:"metadata"`
}

func (r updateTransactionRequest) validate() error {
	if r.Status != nil && !domain.TransactionStatus(*r.Status).Valid() {
		return fmt.Errorf("invalid status %q", *r.Status)
	}
	return nil
}

func (r updateTransactionRequest) apply(tx *domain.Transaction) {
	if r.Status != nil {
		tx.Status = domain.TransactionStatus(*r.Status)
	}
	if r.WompiTransactionID != nil {
		tx.WompiTransactionID = r.WompiTransactionID
	}
	if r.RedirectURL != nil {
		tx.RedirectURL = r.RedirectURL
	}
	if r.PaymentLinkID != nil {
		tx.PaymentLinkID = r.PaymentLinkID
	}
	if r.ErrorMessage != nil {
		tx.ErrorMessage = r.ErrorMessage
	}
	if r.PaymentMethod != nil {
		tx.PaymentMethod = r.PaymentMethod
	}
	if r.Metadata != nil {
		tx.Metadata = r.Metadata
	}
}

type transactionResponse struct {
	ID                  string         `json:"id"`
	CustomerID          string         `json:"customerId"`
	CustomerEmail       string         `json:"customerEmail"`
	AmountInCents       int64          `json:"amountInCents"`
	Currency            string         `json:"currency"`
	Status              string         `json:"status"`
	Reference           string         `json:"reference"`
	AcceptanceToken     string         `json:"acceptanceToken"`
	AcceptPersonalAuth  string         `json:"acceptPersonalAuth"`
	PaymentMethod       map[string]any `json:"paymentMethod,omitempty"`
	ShippingAddress     map[string]any `json:"shippingAddress,omitempty"`
	Metadata            map[string]any `json:"metadata,omitempty"`
	WompiTransactionID  *string        `json:"wompiTransactionId,omitempty"`
	RedirectURL         *string        `json:"redirectUrl,omitempty"`
	PaymentLinkID       *string        `json:"paymentLinkId,omitempty"`
	CustomerFullName    *string        `json:"customerFullName,omitempty"`
	CustomerPhoneNumber *string        `json:"customerPhoneNumber,omitempty"`
	ErrorMessage        *string        `json:"errorMessage,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func toResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:                  tx.ID,
		CustomerID:          tx.CustomerID,
		CustomerEmail:       tx.CustomerEmail,
		AmountInCents:       tx.AmountInCents,
		Currency:            tx.Currency,
		Status:              string(tx.Status),
		Reference:           tx.Reference,
		AcceptanceToken:     tx.AcceptanceToken,
		AcceptPersonalAuth:  tx.AcceptPersonalAuth,
		PaymentMethod:       tx.PaymentMethod,
		ShippingAddress:     tx.ShippingAddress,
		Metadata:            tx.Metadata,
		WompiTransactionID:  tx.WompiTransactionID,
		RedirectURL:         tx.RedirectURL,
		PaymentLinkID:       tx.PaymentLinkID,
		CustomerFullName:    tx.CustomerFullName,
		CustomerPhoneNumber: tx.CustomerPhoneNumber,
		ErrorMessage:        tx.ErrorMessage,
		CreatedAt:           tx.CreatedAt,
		UpdatedAt:           tx.UpdatedAt,
	}
}

func toResponseList(txs []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	return out
}

type errorResponse struct {
	Error string `json:"error"`
}
