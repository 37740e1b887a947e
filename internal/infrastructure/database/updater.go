package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

type BlogUpdater struct {
	db *Database
}

func NewBlogUpdater(db *Database) *BlogUpdater {
	return &BlogUpdater{db: db}
}

// Update replaces the whole document. Concurrent updates to the same blog are
// last-writer-wins.
func (u *BlogUpdater) Update(ctx context.Context, blog *model.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	blog.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := u.db.collection(BlogCollection).ReplaceOne(ctx, bson.M{"_id": blog.ID}, blog)
	if err != nil {
		logger.Error("failed to update blog", "id", blog.ID.Hex(), "err", err)

		return translateWriteError(err)
	}

	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
