package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteUser removes the user and everything it owns: transactions first,
// then tokens, then the user row itself.
type DeleteUser struct {
	ID int64

	IAction
}

func (a *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.DeleteForUser(ctx, a.ID); err != nil {
		return err
	}

	if err := writer.Tokens.DeleteForUser(ctx, a.ID); err != nil {
		return err
	}

	rows, err := writer.Users.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
