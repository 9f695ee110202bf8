package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const transactionColumns = `id, customer_id, customer_email, amount_in_cents, currency, status, reference,
		acceptance_token, accept_personal_auth, payment_method, shipping_address, metadata,
		wompi_transaction_id, redirect_url, payment_link_id, customer_full_name, customer_phone_number,
		error_message, created_at, updated_at`

const upsertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (id) DO UPDATE SET
		customer_id = EXCLUDED.customer_id,
		customer_email = EXCLUDED.customer_email,
		amount_in_cents = EXCLUDED.amount_in_cents,
		currency = EXCLUDED.currency,
		status = EXCLUDED.status,
		reference = EXCLUDED.reference,
		acceptance_token = EXCLUDED.acceptance_token,
		accept_personal_auth = EXCLUDED.accept_personal_auth,
		payment_method = EXCLUDED.payment_method,
		shipping_address = EXCLUDED.shipping_address,
		metadata = EXCLUDED.metadata,
		wompi_transaction_id = EXCLUDED.wompi_transaction_id,
		redirect_url = EXCLUDED.redirect_url,
		payment_link_id = EXCLUDED.payment_link_id,
		customer_full_name = EXCLUDED.customer_full_name,
		customer_phone_number = EXCLUDED.customer_phone_number,
		error_message = EXCLUDED.error_message,
		updated_at = EXCLUDED.updated_at
	RETURNING ` + transactionColumns

// Postgres is the Store backed by the transactions table.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, record TransactionRecord) (TransactionRecord, error) {
	record = record.withDefaults()

	paymentMethod, err := jsonColumn(record.PaymentMethod)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("encode payment_method: %w", err)
	}
	shippingAddress, err := jsonColumn(record.ShippingAddress)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("encode shipping_address: %w", err)
	}
	metadata, err := jsonColumn(record.Metadata)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("encode metadata: %w", err)
	}

	row := s.db.QueryRowContext(ctx, upsertTransactionQuery,
		record.ID,
		record.CustomerID,
		record.CustomerEmail,
		record.AmountInCents,
		record.Currency,
		record.Status,
		record.Reference,
		record.AcceptanceToken,
		record.AcceptPersonalAuth,
		paymentMethod,
		shippingAddress,
		metadata,
		record.WompiTransactionID,
		record.RedirectURL,
		record.PaymentLinkID,
		record.CustomerFullName,
		record.CustomerPhoneNumber,
		record.ErrorMessage,
		record.CreatedAt,
		record.UpdatedAt,
	)

	saved, err := scanRecord(row)
	if err != nil {
		return TransactionRecord{}, err
	}
	return *saved, nil
}

func (s *Postgres) FindOne(ctx context.Context, where Predicate) (*TransactionRecord, error) {
	// newest wins when several rows share the matched value
	query, args, err := selectQuery(where, NewestFirst)
	if err != nil {
		return nil, err
	}

	record, err := scanRecord(s.db.QueryRowContext(ctx, query+" LIMIT 1", args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Postgres) Find(ctx context.Context, where Predicate, order Order) ([]TransactionRecord, error) {
	query, args, err := selectQuery(where, order)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]TransactionRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Postgres) Count(ctx context.Context, where Predicate) (int64, error) {
	if err := where.validate(); err != nil {
		return 0, err
	}

	query := "SELECT COUNT(*) FROM transactions"
	var args []any
	if !where.IsEmpty() {
		query += " WHERE " + string(where.Column) + " = $1"
		args = append(args, where.Value)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// selectQuery only interpolates column names that passed validation; values
// always travel as placeholders.
func selectQuery(where Predicate, order Order) (string, []any, error) {
	if err := where.validate(); err != nil {
		return "", nil, err
	}
	if err := order.validate(); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	var args []any
	b.WriteString("SELECT " + transactionColumns + " FROM transactions")
	if !where.IsEmpty() {
		b.WriteString(" WHERE " + string(where.Column) + " = $1")
		args = append(args, where.Value)
	}
	if order.Column != "" {
		dir := order.Direction
		if dir == "" {
			dir = Asc
		}
		b.WriteString(" ORDER BY " + string(order.Column) + " " + string(dir))
	}
	return b.String(), args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*TransactionRecord, error) {
	var r TransactionRecord
	var paymentMethod, shippingAddress, metadata []byte

	err := row.Scan(
		&r.ID,
		&r.CustomerID,
		&r.CustomerEmail,
		&r.AmountInCents,
		&r.Currency,
		&r.Status,
		&r.Reference,
		&r.AcceptanceToken,
		&r.AcceptPersonalAuth,
		&paymentMethod,
		&shippingAddress,
		&metadata,
		&r.WompiTransactionID,
		&r.RedirectURL,
		&r.PaymentLinkID,
		&r.CustomerFullName,
		&r.CustomerPhoneNumber,
		&r.ErrorMessage,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	if r.PaymentMethod, err = jsonMap(paymentMethod); err != nil {
		return nil, fmt.Errorf("decode payment_method: %w", err)
	}
	if r.ShippingAddress, err = jsonMap(shippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping_address: %w", err)
	}
	if r.Metadata, err = jsonMap(metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &r, nil
}

// jsonColumn encodes a map for a jsonb column; nil becomes SQL NULL.
func jsonColumn(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonMap(b []byte) (map[string]any, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
