package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
)

const (
	BlogCollection = "blogs"
	UserCollection = "users"

	documentValidationFailure = 121
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initBlogCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func initBlogCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": BlogCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	counter := bson.M{"bsonType": []string{"int", "long"}, "minimum": 0}
	nullableString := bson.M{"bsonType": []string{"string", "null"}}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{
				"title", "category", "author", "authorRole", "date",
				"excerpt", "content", "readTime",
			},
			"properties": bson.M{
				"title": bson.M{
					"bsonType":  "string",
					"minLength": 1,
					"maxLength": model.TitleMaxLength,
				},
				"category": bson.M{
					"bsonType": "string",
					"enum":     model.Categories,
				},
				"author":      bson.M{"bsonType": "string", "minLength": 1},
				"authorRole":  bson.M{"bsonType": "string", "minLength": 1},
				"authorImage": nullableString,
				"date":        bson.M{"bsonType": "date"},
				"location":    bson.M{"bsonType": "string"},
				"excerpt": bson.M{
					"bsonType":  "string",
					"minLength": 1,
					"maxLength": model.ExcerptMaxLength,
				},
				"content":  bson.M{"bsonType": "string", "minLength": 1},
				"readTime": bson.M{"bsonType": "string", "minLength": 1},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"featured":  bson.M{"bsonType": "bool"},
				"image":     nullableString,
				"views":     counter,
				"likes":     counter,
				"comments":  counter,
				"bookmarks": counter,
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, BlogCollection, collOpts)
	if err != nil {
		return err
	}

	_, err = db.collection(BlogCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}

// objectID parses a hex id. Ids that can never exist are reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, database.ErrNotFound
	}

	return oid, nil
}

// translateWriteError maps schema validator rejections to ErrInvalidDocument.
func translateWriteError(err error) error {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return fmt.Errorf("%w: %s", database.ErrInvalidDocument, e.Message)
			}
		}
	}

	return err
}
