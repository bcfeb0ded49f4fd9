package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single storage
// transaction; actions expose their results as struct fields, which are safe
// to read once the operator has responded.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// ErrNotFound is returned by actions whose target row does not exist.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "record not found" }
