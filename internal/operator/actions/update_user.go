package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// UpdateUser applies name and email to the user row.
type UpdateUser struct {
	ID    int64
	Name  string
	Email string

	// results
	User *user.User

	IAction
}

func (a *UpdateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Users.Update(ctx, a.ID, a.Name, a.Email)
	if err != nil {
		if storage.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	a.User = updated
	return nil
}
