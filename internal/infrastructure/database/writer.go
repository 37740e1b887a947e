package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/model"
	"prana/pkg/logger"
)

type BlogWriter struct {
	db *Database
}

func NewBlogWriter(db *Database) *BlogWriter {
	return &BlogWriter{db: db}
}

func (w *BlogWriter) Write(ctx context.Context, blog *model.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := w.db.collection(BlogCollection).InsertOne(ctx, blog)
	if err != nil {
		blog.ID = primitive.NilObjectID
		logger.Error("failed to insert blog", "err", err)

		return translateWriteError(err)
	}

	return nil
}
