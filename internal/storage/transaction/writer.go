package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a transaction row and returns it as stored.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "name", "date", "deposit", "expense"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Date, create.Deposit, create.Expense)),
		im.Returning("id", "user_id", "name", "date", "deposit", "expense", "created_at", "updated_at"),
	)
	return bob.One(ctx, w.tx, q, scan.StructMapper[*Transaction]())
}

// Update applies the submitted fields to the row and returns the updated row.
func (w *Writer) Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error) {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("date").ToArg(update.Date),
		um.SetCol("deposit").ToArg(update.Deposit),
		um.SetCol("expense").ToArg(update.Expense),
		um.SetCol("updated_at").ToArg(time.Now()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("id", "user_id", "name", "date", "deposit", "expense", "created_at", "updated_at"),
	)
	return bob.One(ctx, w.tx, q, scan.StructMapper[*Transaction]())
}

// Delete removes the row and reports how many rows went away.
func (w *Writer) Delete(ctx context.Context, id int64) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteForUser removes every transaction owned by the user.
func (w *Writer) DeleteForUser(ctx context.Context, userID int64) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
