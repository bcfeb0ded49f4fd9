package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/validation"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// List returns every transaction in the store. Results are not scoped to the
// caller.
func (s *TransactionService) List(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted, nil
}

// Create inserts a transaction owned by ownerID, the authenticated caller.
// This is the only operation in the system with ownership binding.
func (s *TransactionService) Create(ctx context.Context, ownerID int64, input TransactionInput) (*Transaction, error) {
	date, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Create: &transaction.TransactionCreate{
			UserID:  ownerID,
			Name:    input.Name,
			Date:    date,
			Deposit: nullDecimalFrom(input.Deposit),
			Expense: nullDecimalFrom(input.Expense),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return transactionFromStorage(action.Transaction), nil
}

// Get retrieves a transaction by ID.
func (s *TransactionService) Get(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "Transaction"}
		}
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// Update validates the same fields as Create and applies the whole submitted
// field set to the record.
func (s *TransactionService) Update(ctx context.Context, id int64, input TransactionInput) (*Transaction, error) {
	date, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		ID: id,
		Update: &transaction.TransactionUpdate{
			Name:    input.Name,
			Date:    date,
			Deposit: nullDecimalFrom(input.Deposit),
			Expense: nullDecimalFrom(input.Expense),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Transaction"}
		}
		return nil, err
	}

	return transactionFromStorage(action.Transaction), nil
}

// Delete removes a transaction by ID.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	err := s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return &NotFoundError{Resource: "Transaction"}
		}
		return err
	}
	return nil
}

func (s *TransactionService) validateInput(input TransactionInput) (date time.Time, err error) {
	errs := validation.TransactionWrite.Validate(map[string]string{
		"name": input.Name,
		"date": input.Date,
	})
	validation.CheckAmount(errs, "deposit", input.Deposit)
	validation.CheckAmount(errs, "expense", input.Expense)

	if errs.Any() {
		return time.Time{}, &ValidationError{Errors: errs}
	}

	date, _ = validation.ParseDate(input.Date)
	return date, nil
}
