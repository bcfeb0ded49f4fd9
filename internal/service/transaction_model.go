package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        int64
	UserID    int64
	Name      string
	Date      time.Time
	Deposit   decimal.NullDecimal
	Expense   decimal.NullDecimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionInput carries the submitted fields for create and update. Date
// arrives as the raw string so the service owns calendar-date validation.
type TransactionInput struct {
	Name    string
	Date    string
	Deposit *float64
	Expense *float64
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Date:      row.Date,
		Deposit:   row.Deposit,
		Expense:   row.Expense,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func nullDecimalFrom(amount *float64) decimal.NullDecimal {
	if amount == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*amount))
}
