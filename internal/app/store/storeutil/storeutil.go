// internal/app/store/storeutil/storeutil.go

// Package storeutil holds helpers shared by the store packages.
package storeutil

import "go.mongodb.org/mongo-driver/mongo/options"

const (
	// DefaultLimit is the page size used when the caller does not give one.
	DefaultLimit = 20
	// MaxLimit caps the page size; list limits arrive from query
	// parameters and must not let a single request drain a collection.
	MaxLimit = 100
)

// Paginate returns *options.FindOptions with skip/limit given a 1-based page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}
