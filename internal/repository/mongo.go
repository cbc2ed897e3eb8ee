package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
)

// Connect dials the document store and pings it before returning.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("client.Ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique email index on the users collection.
// It is the only secondary index the schema carries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("users.Indexes.CreateOne: %w", err)
	}

	return nil
}

func decimalToBSON(d decimal.Decimal) (primitive.Decimal128, error) {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("primitive.ParseDecimal128[%s]: %w", d.String(), err)
	}

	return d128, nil
}

func decimalFromBSON(d primitive.Decimal128) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal.NewFromString[%s]: %w", d.String(), err)
	}

	return parsed, nil
}
