/*
Package query wraps https://github.com/mongodb/mongo-go-driver with table
names, slow query logs and timing metrics.
*/
package query

import (
	"errors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCollScan is error for unindexed query when index checking is on
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(c ctx.Ctx, table domain.Table, insert interface{}) error

	// Count returns the number of documents matching selector
	Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Search decodes documents matching query into results, ordered by sort
	// ("timestamp" ascending, "-timestamp" descending, "" unordered).
	// A limit of 0 means no limit.
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// RemoveAll removes all documents matching selector
	RemoveAll(c ctx.Ctx, table domain.Table, selector interface{}) (int64, error)
}
