package repositories

import "context"

// TxFn is a function that runs within a transaction. Repositories called
// with the ctx it receives take part in that transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// ExecTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Calling ExecTx with a ctx that already
	// carries a transaction joins it instead of opening a new one.
	ExecTx(ctx context.Context, fn TxFn) error
}
