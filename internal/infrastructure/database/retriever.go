package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

type BlogRetriever struct {
	db *Database
}

func NewBlogRetriever(db *Database) *BlogRetriever {
	return &BlogRetriever{db: db}
}

func (r *BlogRetriever) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var blog model.Blog
	err = r.db.collection(BlogCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		logger.Error("failed to retrieve blog by id", "id", id, "err", err)

		return nil, err
	}

	return &blog, nil
}
