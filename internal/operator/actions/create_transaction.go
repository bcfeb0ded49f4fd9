package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransaction inserts a transaction owned by the authenticated caller.
type CreateTransaction struct {
	Create *transaction.TransactionCreate

	// results
	Transaction *transaction.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Transactions.Insert(ctx, a.Create)
	if err != nil {
		return err
	}

	a.Transaction = created
	return nil
}
