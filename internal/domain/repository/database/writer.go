package database

import (
	"context"

	"prana/internal/domain/model"
)

type Writer interface {
	// Write inserts blog and sets its ID and timestamps.
	Write(ctx context.Context, blog *model.Blog) error
}

type Updater interface {
	// Update replaces the stored blog with the same ID and refreshes UpdatedAt.
	Update(ctx context.Context, blog *model.Blog) error
}
