package user

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

var _ IUserWriter = (*Writer)(nil)

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

// Insert creates a user row and returns it as stored.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "name", "email", "password"),
		im.Values(psql.Arg(create.Name, create.Email, create.Password)),
		im.Returning("id", "name", "email", "password", "role", "created_at", "updated_at"),
	)
	return bob.One(ctx, w.tx, q, scan.StructMapper[*User]())
}

// Update applies name and email to the user row and returns the updated row.
func (w *Writer) Update(ctx context.Context, id int64, name, email string) (*User, error) {
	q := psql.Update(
		um.Table("users"),
		um.SetCol("name").ToArg(name),
		um.SetCol("email").ToArg(email),
		um.SetCol("updated_at").ToArg(time.Now()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("id", "name", "email", "password", "role", "created_at", "updated_at"),
	)
	return bob.One(ctx, w.tx, q, scan.StructMapper[*User]())
}

// Delete removes the user row and reports how many rows went away.
func (w *Writer) Delete(ctx context.Context, id int64) (int64, error) {
	q := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
