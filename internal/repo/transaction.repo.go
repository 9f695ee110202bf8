package repo

import (
	"context"
	"fmt"
	"time"

	"payment-transactions/internal/domain"
	"payment-transactions/internal/result"
	"payment-transactions/internal/store"

	"go.uber.org/zap"
)

// TransactionRepo is the persistence port for payment transactions.
// No method returns a bare error: every outcome is a Result, and lists are
// ordered newest first by creation time.
type TransactionRepo interface {
	Create(ctx context.Context, tx domain.Transaction) result.Result[domain.Transaction]
	// FindByID fails with ErrTransactionNotFound when no row has the id.
	FindByID(ctx context.Context, id string) result.Result[domain.Transaction]
	// FindByReference fails with ErrTransactionNotFound when no row has the reference.
	FindByReference(ctx context.Context, reference string) result.Result[domain.Transaction]
	FindAll(ctx context.Context) result.Result[[]domain.Transaction]
	FindByCustomerID(ctx context.Context, customerID string) result.Result[[]domain.Transaction]
	FindByCustomerEmail(ctx context.Context, email string) result.Result[[]domain.Transaction]
	Update(ctx context.Context, tx domain.Transaction) result.Result[domain.Transaction]
	ExistsByID(ctx context.Context, id string) result.Result[bool]
}

// Logger is the subset of *zap.Logger the repository writes failures to.
type Logger interface {
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

type Option func(*transactionRepo)

// WithClock replaces the source of CreatedAt/UpdatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *transactionRepo) { r.now = now }
}

type transactionRepo struct {
	store store.Store
	log   Logger
	now   func() time.Time
}

func NewTransactionRepo(s store.Store, log Logger, opts ...Option) TransactionRepo {
	r := &transactionRepo{
		store: s,
		log:   log,
		now:   defaultClock,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Postgres keeps microseconds; truncating here keeps saved and returned values equal.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (r *transactionRepo) Create(ctx context.Context, tx domain.Transaction) result.Result[domain.Transaction] {
	return r.save(ctx, "create transaction", tx)
}

func (r *transactionRepo) Update(ctx context.Context, tx domain.Transaction) result.Result[domain.Transaction] {
	return r.save(ctx, "update transaction", tx)
}

func (r *transactionRepo) save(ctx context.Context, op string, tx domain.Transaction) (res result.Result[domain.Transaction]) {
	defer recoverFailure(r.log, op, &res)

	now := r.now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	saved, err := r.store.Save(ctx, ToSchema(tx))
	if err != nil {
		return failed[domain.Transaction](r.log, op, err, zap.String("transaction_id", tx.ID))
	}
	return result.Ok(ToDomain(saved))
}

func (r *transactionRepo) FindByID(ctx context.Context, id string) result.Result[domain.Transaction] {
	return r.findOne(ctx, "find transaction by id", store.Where(store.ColumnID, id), "id", id)
}

func (r *transactionRepo) FindByReference(ctx context.Context, reference string) result.Result[domain.Transaction] {
	return r.findOne(ctx, "find transaction by reference", store.Where(store.ColumnReference, reference), "reference", reference)
}

func (r *transactionRepo) findOne(ctx context.Context, op string, where store.Predicate, key, value string) (res result.Result[domain.Transaction]) {
	defer recoverFailure(r.log, op, &res)

	record, err := r.store.FindOne(ctx, where)
	if err != nil {
		return failed[domain.Transaction](r.log, op, err, zap.String(key, value))
	}
	if record == nil {
		nf := &notFoundError{key: key, value: value}
		r.log.Warn(nf.Error(), zap.String(key, value))
		return result.Fail[domain.Transaction](nf)
	}
	return result.Ok(ToDomain(*record))
}

func (r *transactionRepo) FindAll(ctx context.Context) result.Result[[]domain.Transaction] {
	return r.find(ctx, "find transactions", store.Predicate{})
}

func (r *transactionRepo) FindByCustomerID(ctx context.Context, customerID string) result.Result[[]domain.Transaction] {
	return r.find(ctx, "find transactions by customer id", store.Where(store.ColumnCustomerID, customerID))
}

func (r *transactionRepo) FindByCustomerEmail(ctx context.Context, email string) result.Result[[]domain.Transaction] {
	return r.find(ctx, "find transactions by customer email", store.Where(store.ColumnCustomerEmail, email))
}

func (r *transactionRepo) find(ctx context.Context, op string, where store.Predicate) (res result.Result[[]domain.Transaction]) {
	defer recoverFailure(r.log, op, &res)

	records, err := r.store.Find(ctx, where, store.NewestFirst)
	if err != nil {
		return failed[[]domain.Transaction](r.log, op, err, zap.String("filter", string(where.Column)), zap.String("value", where.Value))
	}
	return result.Ok(ToDomainList(records))
}

func (r *transactionRepo) ExistsByID(ctx context.Context, id string) (res result.Result[bool]) {
	const op = "check transaction existence"
	defer recoverFailure(r.log, op, &res)

	n, err := r.store.Count(ctx, store.Where(store.ColumnID, id))
	if err != nil {
		return failed[bool](r.log, op, err, zap.String("id", id))
	}
	return result.Ok(n > 0)
}

func failed[T any](log Logger, op string, err error, fields ...zap.Field) result.Result[T] {
	se := &storeError{op: op, err: err}
	log.Error(se.Error(), append(fields, zap.Error(err))...)
	return result.Fail[T](se)
}

// recoverFailure turns a panic raised below the port into a failure Result.
func recoverFailure[T any](log Logger, op string, res *result.Result[T]) {
	if p := recover(); p != nil {
		*res = failed[T](log, op, fmt.Errorf("store panicked: %v", p), zap.Stack("stack"))
	}
}
