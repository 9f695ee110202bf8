package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Schema-level defaults, applied on save when the column value is empty.
const (
	DefaultCurrency = "COP"
	DefaultStatus   = "PENDING"
)

// TransactionRecord is the flat row shape of the transactions table.
// The validate tags mirror the column constraints of the persisted schema.
type TransactionRecord struct {
	ID                 string `db:"id" validate:"required,max=36"`
	CustomerID         string `db:"customer_id" validate:"max=36"`
	CustomerEmail      string `db:"customer_email" validate:"max=255"`
	AmountInCents      int64  `db:"amount_in_cents" validate:"min=0"`
	Currency           string `db:"currency" validate:"len=3"`
	Status             string `db:"status" validate:"oneof=PENDING APPROVED DECLINED VOIDED ERROR"`
	Reference          string `db:"reference" validate:"max=100"`
	AcceptanceToken    string `db:"acceptance_token"`
	AcceptPersonalAuth string `db:"accept_personal_auth"`

	PaymentMethod   map[string]any `db:"payment_method"`
	ShippingAddress map[string]any `db:"shipping_address"`
	Metadata        map[string]any `db:"metadata"`

	WompiTransactionID  *string `db:"wompi_transaction_id" validate:"omitempty,max=100"`
	RedirectURL         *string `db:"redirect_url"`
	PaymentLinkID       *string `db:"payment_link_id" validate:"omitempty,max=100"`
	CustomerFullName    *string `db:"customer_full_name" validate:"omitempty,max=255"`
	CustomerPhoneNumber *string `db:"customer_phone_number" validate:"omitempty,max=50"`
	ErrorMessage        *string `db:"error_message"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r TransactionRecord) withDefaults() TransactionRecord {
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if r.Status == "" {
		r.Status = DefaultStatus
	}
	return r
}

type Column string

const (
	ColumnID            Column = "id"
	ColumnReference     Column = "reference"
	ColumnCustomerID    Column = "customer_id"
	ColumnCustomerEmail Column = "customer_email"
	ColumnCreatedAt     Column = "created_at"
	ColumnUpdatedAt     Column = "updated_at"
)

var ErrUnsupportedColumn = errors.New("unsupported column")

// Predicate is an equality match on a single column. The zero Predicate
// matches every record.
type Predicate struct {
	Column Column
	Value  string
}

func Where(col Column, value string) Predicate {
	return Predicate{Column: col, Value: value}
}

func (p Predicate) IsEmpty() bool { return p.Column == "" }

func (p Predicate) validate() error {
	switch p.Column {
	case "", ColumnID, ColumnReference, ColumnCustomerID, ColumnCustomerEmail:
		return nil
	}
	return fmt.Errorf("filter on %q: %w", p.Column, ErrUnsupportedColumn)
}

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Order struct {
	Column    Column
	Direction Direction
}

// NewestFirst orders by creation time, most recent first.
var NewestFirst = Order{Column: ColumnCreatedAt, Direction: Desc}

func (o Order) validate() error {
	switch o.Column {
	case "", ColumnCreatedAt, ColumnUpdatedAt:
	default:
		return fmt.Errorf("order by %q: %w", o.Column, ErrUnsupportedColumn)
	}
	switch o.Direction {
	case "", Asc, Desc:
		return nil
	}
	return fmt.Errorf("invalid order direction %q", o.Direction)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Store --dir=. --output=./mocks --outpkg=mocks

// Store is the relational store the transaction repository writes through.
type Store interface {
	// Save inserts the record or overwrites the row with the same id and
	// returns the row as stored.
	Save(ctx context.Context, record TransactionRecord) (TransactionRecord, error)
	// FindOne returns nil and no error when nothing matches.
	FindOne(ctx context.Context, where Predicate) (*TransactionRecord, error)
	Find(ctx context.Context, where Predicate, order Order) ([]TransactionRecord, error)
	Count(ctx context.Context, where Predicate) (int64, error)
}
