package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// RegisterUser creates the user row and its first access token in one tx.
type RegisterUser struct {
	Name           string
	Email          string
	HashedPassword string
	TokenDigest    string

	// results
	User    *user.User
	TokenID int64

	IAction
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Users.Insert(ctx, &user.UserCreate{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.HashedPassword,
	})
	if err != nil {
		return err
	}

	tokenID, err := writer.Tokens.Insert(ctx, created.ID, a.TokenDigest)
	if err != nil {
		return err
	}

	a.User = created
	a.TokenID = tokenID
	return nil
}
