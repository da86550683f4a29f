// Package mongostore stores categories and products as MongoDB documents.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/catalogapp/catalog/internal/query"
	"github.com/catalogapp/catalog/internal/repository"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
)

// Connect dials uri and verifies the server answers a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes both repositories rely on. Category
// names are only unique among documents that are not soft-deleted.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(categoriesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("name_unique_live").
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "isDeleted", Value: false}}),
		},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create category indexes: %w", err)
	}

	_, err = db.Collection(productsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

// Ping reports whether the database answers.
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}

func now() time.Time {
	// BSON dates carry millisecond precision.
	return time.Now().UTC().Truncate(time.Millisecond)
}

func liveFilter(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}, {Key: "isDeleted", Value: false}}
}

func listFilter(search string) bson.D {
	filter := bson.D{{Key: "isDeleted", Value: false}}
	if search != "" {
		re := primitive.Regex{Pattern: query.RegexPattern(search), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: re}},
			bson.D{{Key: "description", Value: re}},
		}})
	}
	return filter
}

func listOptions(skip, limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
}

// parseID maps malformed ids to ErrNotFound; services reject them earlier.
func parseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

func translateError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}
