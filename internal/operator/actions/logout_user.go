package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// LogoutUser revokes every token belonging to the user.
type LogoutUser struct {
	UserID int64

	IAction
}

func (a *LogoutUser) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Tokens.DeleteForUser(ctx, a.UserID)
}
