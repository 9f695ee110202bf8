package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction_Defaults(t *testing.T) {
	tx := NewTransaction(NewTransactionParams{
		CustomerID:    "cus-1",
		CustomerEmail: "ana@example.com",
		AmountInCents: 150000,
		Reference:     "ORDER-1",
	})

	_, err := uuid.Parse(tx.ID)
	require.NoError(t, err, "generated id must be a uuid")
	assert.Equal(t, DefaultCurrency, tx.Currency)
	assert.Equal(t, StatusPending, tx.Status)
	assert.Nil(t, tx.Metadata)
	assert.Nil(t, tx.WompiTransactionID)
	assert.True(t, tx.CreatedAt.IsZero())
}

func TestNewTransaction_KeepsGivenValues(t *testing.T) {
	tx := NewTransaction(NewTransactionParams{
		ID:       "123e4567-e89b-12d3-a456-426614174000",
		Currency: "USD",
	})

	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", tx.ID)
	assert.Equal(t, "USD", tx.Currency)
}

func TestTransactionStatus(t *testing.T) {
	for _, s := range []TransactionStatus{StatusPending, StatusApproved, StatusDeclined, StatusVoided, StatusError} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TransactionStatus("REFUNDED").Valid())
	assert.False(t, TransactionStatus("").Valid())
}
