package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// UpdateTransaction applies the submitted field set to the transaction row.
type UpdateTransaction struct {
	ID     int64
	Update *transaction.TransactionUpdate

	// results
	Transaction *transaction.Transaction

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Transactions.Update(ctx, a.ID, a.Update)
	if err != nil {
		if storage.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	a.Transaction = updated
	return nil
}
