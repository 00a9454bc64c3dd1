// Package blob defines the content store contract the engine persists
// artifacts through: raw extraction JSON, mapped item tables, and
// consolidated order exports.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for an unknown URI.
var ErrNotFound = errors.New("blob not found")

// Store is an opaque-URI key-value contract. Put derives a stable URI from
// the hint; the engine never interprets URIs beyond passing them back.
type Store interface {
	Put(ctx context.Context, hint string, data []byte) (string, error)
	Get(ctx context.Context, uri string) ([]byte, error)
	Delete(ctx context.Context, uri string) error
}
