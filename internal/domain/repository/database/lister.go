package database

import (
	"context"

	"prana/internal/domain/model"
	"prana/internal/domain/query"
)

// Lister defines the interface for listing blogs from the database.
type Lister interface {
	// List returns the page selected by spec and the number of blogs matching
	// its clauses regardless of paging.
	List(ctx context.Context, spec query.Spec) ([]model.Blog, int64, error)
}
