package adapter

import "context"

// TxManager runs a function inside a single storage transaction. Every
// mutating ledger operation runs within one transaction so entity updates and
// their audit entries either fully apply or fully fail.
type TxManager interface {
	// WithinTx executes fn inside a transaction carried in the returned
	// context. Returning an error rolls the transaction back.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
