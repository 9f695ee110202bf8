package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Memory is an in-process Store for local runs and tests. It rejects values
// the Postgres schema would reject.
type Memory struct {
	mu       sync.RWMutex
	records  map[string]TransactionRecord
	validate *validator.Validate
}

func NewMemory() *Memory {
	return &Memory{
		records:  make(map[string]TransactionRecord),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (m *Memory) Save(ctx context.Context, record TransactionRecord) (TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return TransactionRecord{}, err
	}

	record = record.withDefaults()
	if err := m.validate.Struct(record); err != nil {
		return TransactionRecord{}, fmt.Errorf("constraint violation: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.records[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	}
	m.records[record.ID] = cloneRecord(record)
	return cloneRecord(record), nil
}

func (m *Memory) FindOne(ctx context.Context, where Predicate) (*TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := where.validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if where.Column == ColumnID {
		r, ok := m.records[where.Value]
		if !ok {
			return nil, nil
		}
		r = cloneRecord(r)
		return &r, nil
	}
	var newest *TransactionRecord
	for _, r := range m.records {
		if !matches(r, where) {
			continue
		}
		if newest == nil || r.CreatedAt.After(newest.CreatedAt) {
			newest = &r
		}
	}
	if newest == nil {
		return nil, nil
	}
	found := cloneRecord(*newest)
	return &found, nil
}

func (m *Memory) Find(ctx context.Context, where Predicate, order Order) ([]TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := where.validate(); err != nil {
		return nil, err
	}
	if err := order.validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	records := make([]TransactionRecord, 0, len(m.records))
	for _, r := range m.records {
		if matches(r, where) {
			records = append(records, cloneRecord(r))
		}
	}
	m.mu.RUnlock()

	if order.Column != "" {
		slices.SortStableFunc(records, func(a, b TransactionRecord) int {
			c := orderKey(a, order.Column).Compare(orderKey(b, order.Column))
			if order.Direction == Desc {
				return -c
			}
			return c
		})
	}
	return records, nil
}

func (m *Memory) Count(ctx context.Context, where Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := where.validate(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, r := range m.records {
		if matches(r, where) {
			n++
		}
	}
	return n, nil
}

func matches(r TransactionRecord, where Predicate) bool {
	switch where.Column {
	case "":
		return true
	case ColumnID:
		return r.ID == where.Value
	case ColumnReference:
		return r.Reference == where.Value
	case ColumnCustomerID:
		return r.CustomerID == where.Value
	case ColumnCustomerEmail:
		return r.CustomerEmail == where.Value
	}
	return false
}

func orderKey(r TransactionRecord, col Column) time.Time {
	if col == ColumnUpdatedAt {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

func cloneRecord(r TransactionRecord) TransactionRecord {
	r.PaymentMethod = maps.Clone(r.PaymentMethod)
	r.ShippingAddress = maps.Clone(r.ShippingAddress)
	r.Metadata = maps.Clone(r.Metadata)
	r.WompiTransactionID = cloneString(r.WompiTransactionID)
	r.RedirectURL = cloneString(r.RedirectURL)
	r.PaymentLinkID = cloneString(r.PaymentLinkID)
	r.CustomerFullName = cloneString(r.CustomerFullName)
	r.CustomerPhoneNumber = cloneString(r.CustomerPhoneNumber)
	r.ErrorMessage = cloneString(r.ErrorMessage)
	return r
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
