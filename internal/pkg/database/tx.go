package database

import "context"

// TxRunner runs fn inside a single store transaction. Repository calls made
// with the context fn receives join that transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
