// Package txn defines the unit-of-work boundary shared by the social graph services.
//
// Every logical operation (follow, unfollow, like, comment, mark-all-read, ...)
// runs inside exactly one InTx call. Repositories participating in the operation
// receive the transaction through the context passed to fn, so a notification
// written by the fanout step commits or rolls back together with the edge or
// interaction record that triggered it.
package txn

import "context"

// Transactor opens a transaction, runs fn inside it and commits when fn
// returns nil. Any error, including a panic in fn, rolls the transaction back.
// Nested calls reuse the outer transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
