package token

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

var _ ITokenWriter = (*Writer)(nil)

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

// Insert stores a token digest for the user and returns the new row ID.
func (w *Writer) Insert(ctx context.Context, userID int64, digest string) (int64, error) {
	q := psql.Insert(
		im.Into("access_tokens", "user_id", "token"),
		im.Values(psql.Arg(userID, digest)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

// DeleteForUser revokes every token belonging to the user.
func (w *Writer) DeleteForUser(ctx context.Context, userID int64) error {
	q := psql.Delete(
		dm.From("access_tokens"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
