package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table. Deposit and
// expense are independent nullable amounts, both non-negative when present.
type Transaction struct {
	ID        int64               `db:"id"`
	UserID    int64               `db:"user_id"`
	Name      string              `db:"name"`
	Date      time.Time           `db:"date"`
	Deposit   decimal.NullDecimal `db:"deposit"`
	Expense   decimal.NullDecimal `db:"expense"`
	CreatedAt time.Time           `db:"created_at"`
	UpdatedAt time.Time           `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction. UserID is
// always the authenticated caller.
type TransactionCreate struct {
	UserID  int64
	Name    string
	Date    time.Time
	Deposit decimal.NullDecimal
	Expense decimal.NullDecimal
}

// TransactionUpdate carries the full submitted field set for an update; all
// four fields are applied to the row.
type TransactionUpdate struct {
	Name    string
	Date    time.Time
	Deposit decimal.NullDecimal
	Expense decimal.NullDecimal
}

// ITransactionTable defines the read-side interface for transaction storage
// operations.
type ITransactionTable interface {
	List(ctx context.Context) ([]*Transaction, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
}

// ITransactionWriter defines the write-side interface for transaction
// storage operations.
type ITransactionWriter interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteForUser(ctx context.Context, userID int64) error
}
