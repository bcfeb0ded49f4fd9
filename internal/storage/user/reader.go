package user

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context) ([]*User, error) {
	q := psql.Select(
		sm.Columns("id", "name", "email", "password", "role", "created_at", "updated_at"),
		sm.From("users"),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*User]())
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "name", "email", "password", "role", "created_at", "updated_at"),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, r.exec, q, scan.StructMapper[*User]())
}

func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "name", "email", "password", "role", "created_at", "updated_at"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	return bob.One(ctx, r.exec, q, scan.StructMapper[*User]())
}

// EmailInUse reports whether any user row holds the given email. The target
// row is never excluded, so updating a user to its current email reads as a
// duplicate.
func (r *Reader) EmailInUse(ctx context.Context, email string) (bool, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	count, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
