package postgresql

import (
	"context"

	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txRunner struct {
	db *database.DB
}

// NewTxRunner returns a database.TxRunner backed by pgx transactions.
func NewTxRunner(db *database.DB) database.TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context, _ pgx.Tx) error {
		return fn(txCtx)
	})
}
