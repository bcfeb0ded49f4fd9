package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ActionProcessor runs one write action inside a single database transaction.
// It is implemented by operator.OperatorDelegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	User        *UserService
	Transaction *TransactionService
}

// NewService creates a new Service over the given storage and write path.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Auth:        NewAuthService(store, processor),
		User:        NewUserService(store, processor),
		Transaction: NewTransactionService(store, processor),
	}
}
