package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func record(id, customerID string, createdAt time.Time) TransactionRecord {
	return TransactionRecord{
		ID:            id,
		CustomerID:    customerID,
		CustomerEmail: customerID + "@example.com",
		AmountInCents: 5000,
		Reference:     "REF-" + id,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestMemory_SaveAppliesDefaults(t *testing.T) {
	m := NewMemory()

	saved, err := m.Save(context.Background(), record("tx-1", "cus-1", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, saved.Currency)
	assert.Equal(t, DefaultStatus, saved.Status)
}

func TestMemory_SaveRejectsSchemaViolations(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*TransactionRecord)
	}{
		{"empty id", func(r *TransactionRecord) { r.ID = "" }},
		{"id too long", func(r *TransactionRecord) { r.ID = strings.Repeat("a", 37) }},
		{"email too long", func(r *TransactionRecord) { r.CustomerEmail = strings.Repeat("a", 256) }},
		{"currency too long", func(r *TransactionRecord) { r.Currency = "COPX" }},
		{"currency too short", func(r *TransactionRecord) { r.Currency = "US" }},
		{"unknown status", func(r *TransactionRecord) { r.Status = "BOGUS" }},
		{"negative amount", func(r *TransactionRecord) { r.AmountInCents = -1 }},
		{"reference too long", func(r *TransactionRecord) { r.Reference = strings.Repeat("r", 101) }},
		{"phone too long", func(r *TransactionRecord) { r.CustomerPhoneNumber = ptr(strings.Repeat("1", 51)) }},
		{"payment link too long", func(r *TransactionRecord) { r.PaymentLinkID = ptr(strings.Repeat("l", 101)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			r := record("tx-1", "cus-1", now)
			tt.mutate(&r)

			_, err := m.Save(ctx, r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "constraint violation")
		})
	}
}

func TestMemory_SaveKeepsCreatedAtOnOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := m.Save(ctx, record("tx-1", "cus-1", first))
	require.NoError(t, err)

	later := record("tx-1", "cus-1", first.Add(time.Hour))
	later.Status = "APPROVED"
	saved, err := m.Save(ctx, later)
	require.NoError(t, err)

	assert.Equal(t, first, saved.CreatedAt)
	assert.Equal(t, "APPROVED", saved.Status)
}

func TestMemory_FindOne(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.Save(ctx, record("tx-1", "cus-1", time.Now()))
	require.NoError(t, err)

	got, err := m.FindOne(ctx, Where(ColumnReference, "REF-tx-1"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tx-1", got.ID)

	got, err = m.FindOne(ctx, Where(ColumnID, "missing"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_FindOnePicksNewestOnSharedReference(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"tx-old", "tx-new", "tx-mid"} {
		r := record(id, "cus-1", base.Add([]time.Duration{0, 2 * time.Hour, time.Hour}[i]))
		r.Reference = "ORDER-SHARED"
		_, err := m.Save(ctx, r)
		require.NoError(t, err)
	}

	for range 5 {
		got, err := m.FindOne(ctx, Where(ColumnReference, "ORDER-SHARED"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "tx-new", got.ID)
	}
}

func TestMemory_FindOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"tx-b", "tx-a", "tx-c"} {
		_, err := m.Save(ctx, record(id, "cus-1", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := m.Save(ctx, record("tx-other", "cus-2", base.Add(time.Hour)))
	require.NoError(t, err)

	got, err := m.Find(ctx, Where(ColumnCustomerID, "cus-1"), NewestFirst)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"tx-c", "tx-a", "tx-b"}, []string{got[0].ID, got[1].ID, got[2].ID})

	all, err := m.Find(ctx, Predicate{}, NewestFirst)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "tx-other", all[0].ID)
}

func TestMemory_FindEmpty(t *testing.T) {
	got, err := NewMemory().Find(context.Background(), Predicate{}, NewestFirst)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemory_Count(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.Save(ctx, record("tx-1", "cus-1", time.Now()))
	require.NoError(t, err)

	n, err := m.Count(ctx, Where(ColumnID, "tx-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Count(ctx, Where(ColumnID, "tx-2"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemory_UnsupportedColumn(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Find(ctx, Where("amount_in_cents", "1"), NewestFirst)
	assert.ErrorIs(t, err, ErrUnsupportedColumn)

	_, err = m.Find(ctx, Predicate{}, Order{Column: ColumnReference, Direction: Desc})
	assert.ErrorIs(t, err, ErrUnsupportedColumn)

	_, err = m.Count(ctx, Where("status", "PENDING"))
	assert.ErrorIs(t, err, ErrUnsupportedColumn)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := record("tx-1", "cus-1", time.Now())
	r.Metadata = map[string]any{"k": "v"}
	_, err := m.Save(ctx, r)
	require.NoError(t, err)

	r.Metadata["k"] = "changed"

	got, err := m.FindOne(ctx, Where(ColumnID, "tx-1"))
	require.NoError(t, err)
	assert.Equal(t, "v", got.Metadata["k"])
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemory().Count(ctx, Predicate{})
	assert.ErrorIs(t, err, context.Canceled)
}
