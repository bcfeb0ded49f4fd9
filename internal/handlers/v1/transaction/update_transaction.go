package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction ID"`
	Body TransactionBody
}

// UpdateTransactionResponse wraps the updated record the way the API
// historically returned it.
type UpdateTransactionResponse struct {
	Transaction Transaction `json:"transaction" doc:"The updated transaction"`
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponse
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id int64, input service.TransactionInput) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Validates and applies the submitted fields to the transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	updated, err := h.TransactionService.Update(ctx, input.ID, input.Body.toInput())
	if err != nil {
		return nil, mapError(err, false)
	}

	return &UpdateTransactionOutput{
		Body: UpdateTransactionResponse{Transaction: transactionToAPI(updated)},
	}, nil
}
