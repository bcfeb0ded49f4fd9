package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every transaction in the store, oldest first.
func (r *Reader) List(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "date", "deposit", "expense", "created_at", "updated_at"),
		sm.From("transactions"),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Transaction]())
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "date", "deposit", "expense", "created_at", "updated_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, r.exec, q, scan.StructMapper[*Transaction]())
}
