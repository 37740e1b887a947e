package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

type BlogRemover struct {
	db *Database
}

func NewRemover(db *Database) *BlogRemover {
	return &BlogRemover{db: db}
}

func (r *BlogRemover) RemoveByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.db.collection(BlogCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error("failed to remove blog", "id", id, "err", err)

		return err
	}

	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
