package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// LoginUser swaps the user's tokens: every prior token is revoked and one
// new token is issued. Revocation and issuance commit or roll back together.
type LoginUser struct {
	UserID      int64
	TokenDigest string

	// results
	TokenID int64

	IAction
}

func (a *LoginUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Tokens.DeleteForUser(ctx, a.UserID); err != nil {
		return err
	}

	tokenID, err := writer.Tokens.Insert(ctx, a.UserID, a.TokenDigest)
	if err != nil {
		return err
	}

	a.TokenID = tokenID
	return nil
}
