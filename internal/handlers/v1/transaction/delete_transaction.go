package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction ID"`
}

// DeleteTransactionResponse is the success body for deleting a transaction.
type DeleteTransactionResponse struct {
	Status  bool   `json:"status" doc:"Outcome flag"`
	Message string `json:"message" doc:"Human readable outcome"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes the transaction with the given ID.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if err := h.TransactionService.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err, true)
	}

	return &DeleteTransactionOutput{
		Body: DeleteTransactionResponse{
			Status:  true,
			Message: "Transaction deleted successfully",
		},
	}, nil
}
