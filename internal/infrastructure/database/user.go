package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

type UserStore struct {
	db *Database
}

func NewUserStore(db *Database) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var user model.User
	err = s.db.collection(UserCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		logger.Error("failed to retrieve user by id", "id", id, "err", err)

		return nil, err
	}

	return &user, nil
}

func (s *UserStore) TouchLastActivity(ctx context.Context, id string, at time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(UserCollection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"lastActivity": at}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
