// Package store provides the key-value persistence backends the shop
// economy reads and writes through. The contract is deliberately narrow:
// opaque string values under string keys, absence being a valid state.
package store

import "context"

// KV is the minimal string key-value store the economy gateway persists
// through. Get reports found=false for an absent key; absence is never an
// error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Closer is implemented by backends that hold external resources.
type Closer interface {
	Close()
}
