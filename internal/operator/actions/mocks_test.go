package actions

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// callLog records the order of writer calls across mocks so tests can assert
// the sequence an action runs its statements in.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	l.calls = append(l.calls, name)
}

// mockUserWriter is a mock for user.IUserWriter.
type mockUserWriter struct {
	mock.Mock
	log *callLog
}

func (m *mockUserWriter) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	m.log.add("users.Insert")
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserWriter) Update(ctx context.Context, id int64, name, email string) (*user.User, error) {
	m.log.add("users.Update")
	args := m.Called(ctx, id, name, email)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserWriter) Delete(ctx context.Context, id int64) (int64, error) {
	m.log.add("users.Delete")
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockTokenWriter is a mock for token.ITokenWriter.
type mockTokenWriter struct {
	mock.Mock
	log *callLog
}

func (m *mockTokenWriter) Insert(ctx context.Context, userID int64, digest string) (int64, error) {
	m.log.add("tokens.Insert")
	args := m.Called(ctx, userID, digest)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTokenWriter) DeleteForUser(ctx context.Context, userID int64) error {
	m.log.add("tokens.DeleteForUser")
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockTransactionWriter is a mock for transaction.ITransactionWriter.
type mockTransactionWriter struct {
	mock.Mock
	log *callLog
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	m.log.add("transactions.Insert")
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionWriter) Update(ctx context.Context, id int64, update *transaction.TransactionUpdate) (*transaction.Transaction, error) {
	m.log.add("transactions.Update")
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id int64) (int64, error) {
	m.log.add("transactions.Delete")
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) DeleteForUser(ctx context.Context, userID int64) error {
	m.log.add("transactions.DeleteForUser")
	args := m.Called(ctx, userID)
	return args.Error(0)
}
