package repo

import (
	"payment-transactions/internal/domain"
	"payment-transactions/internal/store"
)

// ToSchema projects a transaction onto its storage record, field for field.
func ToSchema(tx domain.Transaction) store.TransactionRecord {
	return store.TransactionRecord{
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

// ToDomain is the inverse of ToSchema.
func ToDomain(r store.TransactionRecord) domain.Transaction {
	return domain.Transaction{
		ID:                  r.ID,
		CustomerID:          r.CustomerID,
		CustomerEmail:       r.CustomerEmail,
		AmountInCents:       r.AmountInCents,
		Currency:            r.Currency,
		Status:              domain.TransactionStatus(r.Status),
		Reference:           r.Reference,
		AcceptanceToken:     r.AcceptanceToken,
		AcceptPersonalAuth:  r.AcceptPersonalAuth,
		PaymentMethod:       r.PaymentMethod,
		ShippingAddress:     r.ShippingAddress,
		Metadata:            r.Metadata,
		WompiTransactionID:  r.WompiTransactionID,
		RedirectURL:         r.RedirectURL,
		PaymentLinkID:       r.PaymentLinkID,
		CustomerFullName:    r.CustomerFullName,
		CustomerPhoneNumber: r.CustomerPhoneNumber,
		ErrorMessage:        r.ErrorMessage,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ToDomainList never returns nil, so an empty result is an empty slice.
func ToDomainList(records []store.TransactionRecord) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, ToDomain(r))
	}
	return txs
}
