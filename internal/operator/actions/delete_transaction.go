package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteTransaction removes the transaction row.
type DeleteTransaction struct {
	ID int64

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Transactions.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
