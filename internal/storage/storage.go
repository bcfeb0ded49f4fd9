package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/token"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Storage bundles the database handle with the per-table readers. All writes
// go through a Writer so they run inside a single transaction. The table
// fields are interfaces so services can be tested against mocks.
type Storage struct {
	DB           bob.DB
	Users        user.IUserTable
	Tokens       token.ITokenTable
	Transactions transaction.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.ConnString())
	if err != nil {
		return nil, err
	}

	db := bob.NewDB(sqlDB)

	return &Storage{
		DB:           db,
		Users:        user.NewReader(db),
		Tokens:       token.NewReader(db),
		Transactions: transaction.NewReader(db),
	}, nil
}

// Write begins a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
