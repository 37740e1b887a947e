package usecase

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/entity"
	"prana/internal/domain/repository/broker"
	"prana/internal/domain/repository/database"
)

// Deleter implements the Deleter abstraction for deleting blogs.
type Deleter struct {
	dbRemover database.Remover
	publisher broker.Publisher
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(dbRemover database.Remover, publisher broker.Publisher) *Deleter {
	return &Deleter{
		dbRemover: dbRemover,
		publisher: publisher,
	}
}

// DeleteBlog removes a blog for good.
func (d *Deleter) DeleteBlog(ctx context.Context, id string) (int, error) {
	if err := d.dbRemover.RemoveByID(ctx, id); err != nil {
		return notFoundAsBlog(err)
	}

	// RemoveByID only succeeds for well-formed ids.
	oid, _ := primitive.ObjectIDFromHex(id)
	publishBlogEvent(ctx, d.publisher, entity.BlogDeleted, oid)

	return http.StatusOK, nil
}
