package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/token"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Tx is the transaction handle a Writer commits or rolls back. Satisfied by
// bob.Tx.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles the per-table writers bound to one transaction. Like
// Storage, the fields are interfaces so tests can substitute recording
// writers.
type Writer struct {
	Tx           Tx
	Users        user.IUserWriter
	Tokens       token.ITokenWriter
	Transactions transaction.ITransactionWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		Tx:           tx,
		Users:        user.NewWriter(tx),
		Tokens:       token.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
