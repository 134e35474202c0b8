// Package kvstore is the persistence boundary of the application: a string
// key-value contract the store writes whole serialized collections through.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
// Callers treat it as "no data yet", distinct from a storage failure.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// KV is the key-value persistence contract. Implementations must be safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
