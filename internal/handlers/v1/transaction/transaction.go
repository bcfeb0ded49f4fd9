package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/apierror"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        int64    `json:"id" doc:"Transaction ID"`
	UserID    int64    `json:"user_id" doc:"Owning user ID"`
	Name      string   `json:"name" doc:"Name of the transaction"`
	Date      string   `json:"date" doc:"Calendar date (YYYY-MM-DD)"`
	Deposit   *float64 `json:"deposit" doc:"Deposited amount, null when absent"`
	Expense   *float64 `json:"expense" doc:"Spent amount, null when absent"`
	CreatedAt string   `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt string   `json:"updated_at" doc:"RFC3339 last update time"`
}

// TransactionBody is the request body shared by create and update. Amounts
// are optional and independent; extra fields are tolerated and ignored.
type TransactionBody struct {
	Name    string   `json:"name,omitempty" doc:"Name of the transaction"`
	Date    string   `json:"date,omitempty" doc:"Calendar date (YYYY-MM-DD)"`
	Deposit *float64 `json:"deposit,omitempty" doc:"Deposited amount, non-negative"`
	Expense *float64 `json:"expense,omitempty" doc:"Spent amount, non-negative"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

func transactionToAPI(t *service.Transaction) Transaction {
	api := Transaction{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Date:      t.Date.Format("2006-01-02"),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Deposit.Valid {
		deposit := t.Deposit.Decimal.InexactFloat64()
		api.Deposit = &deposit
	}
	if t.Expense.Valid {
		expense := t.Expense.Decimal.InexactFloat64()
		api.Expense = &expense
	}
	return api
}

func (b TransactionBody) toInput() service.TransactionInput {
	return service.TransactionInput{
		Name:    b.Name,
		Date:    b.Date,
		Deposit: b.Deposit,
		Expense: b.Expense,
	}
}

// mapError converts service errors into the API envelopes for transaction
// endpoints. The get and update paths use the bare message 404 form; delete
// carries the status flag.
func mapError(err error, notFoundWithStatus bool) error {
	switch e := err.(type) {
	case *service.ValidationError:
		return apierror.Validation(e.Errors)
	case *service.NotFoundError:
		if notFoundWithStatus {
			return apierror.NotFound("Transaction not found")
		}
		return apierror.NotFoundMessage("Transaction not found")
	case *service.AuthError:
		return apierror.Unauthenticated(e.Message)
	default:
		return apierror.Internal("Internal server error")
	}
}
