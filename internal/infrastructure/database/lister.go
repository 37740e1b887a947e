package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"prana/internal/domain/model"
	"prana/internal/domain/query"
	"prana/pkg/logger"
)

type BlogLister struct {
	db *Database
}

func NewBlogLister(db *Database) *BlogLister {
	return &BlogLister{db: db}
}

func (l *BlogLister) List(ctx context.Context, spec query.Spec) ([]model.Blog, int64, error) {
	filter, err := toFilter(spec)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.collection(BlogCollection)

	opts := options.Find().SetSort(toSort(spec.Sort))
	if spec.Skip > 0 {
		opts.SetSkip(spec.Skip)
	}
	if spec.Limit > 0 {
		opts.SetLimit(spec.Limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error("failed to list blogs", "err", err)

		return nil, 0, err
	}
	defer cursor.Close(ctx)

	blogs := make([]model.Blog, 0)
	if err = cursor.All(ctx, &blogs); err != nil {
		logger.Error("failed to decode blogs", "err", err)

		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("failed to count blogs", "err", err)

		return nil, 0, err
	}

	return blogs, total, nil
}
