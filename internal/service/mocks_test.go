package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/token"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// mockUserTable is a mock for user.IUserTable.
type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*user.User)
	return rows, args.Error(1)
}

func (m *mockUserTable) FindByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) EmailInUse(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// mockTokenTable is a mock for token.ITokenTable.
type mockTokenTable struct {
	mock.Mock
}

func (m *mockTokenTable) FindByID(ctx context.Context, id int64) (*token.AccessToken, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*token.AccessToken)
	return row, args.Error(1)
}

// mockTransactionTable is a mock for transaction.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) List(ctx context.Context) ([]*transaction.Transaction, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

// mockProcessor is a mock for ActionProcessor. Tests populate action result
// fields through Run callbacks, mirroring what a committed write would do.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}
