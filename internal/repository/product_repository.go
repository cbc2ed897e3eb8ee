package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

type productDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Price       primitive.Decimal128 `bson:"price"`
	Description string               `bson:"description,omitempty"`
}

type productRepository struct {
	products *mongo.Collection
}

func NewProduct(db *mongo.Database) port.ProductRepository {
	return &productRepository{
		products: db.Collection(productsCollection),
	}
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	price, err := decimalToBSON(product.Price)
	if err != nil {
		return p, fmt.Errorf("decimalToBSON: %w", err)
	}

	doc := productDoc{
		ID:          primitive.NewObjectID(),
		Name:        product.Name,
		Price:       price,
		Description: product.Description,
	}

	if _, err := r.products.InsertOne(ctx, doc); err != nil {
		return p, fmt.Errorf("products.InsertOne: %w", err)
	}

	return mapProductDocToDomain(doc)
}

func (r *productRepository) GetProduct(ctx context.Context, productID primitive.ObjectID) (domain.Product, error) {
	var p domain.Product

	var doc productDoc
	if err := r.products.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return p, fmt.Errorf("products.FindOne: %w", domain.ErrNotFound)
		}
		return p, fmt.Errorf("products.FindOne: %w", err)
	}

	return mapProductDocToDomain(doc)
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": productIDs}})
	if err != nil {
		return nil, fmt.Errorf("products.Find: %w", err)
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return mapProductDocsToDomain(docs)
}

func (r *productRepository) ListProducts(ctx context.Context, skip, limit int64) ([]domain.Product, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("products.Find: %w", err)
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return mapProductDocsToDomain(docs)
}

func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	total, err := r.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("products.CountDocuments: %w", err)
	}

	return total, nil
}

func mapProductDocToDomain(doc productDoc) (domain.Product, error) {
	price, err := decimalFromBSON(doc.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decimalFromBSON: %w", err)
	}

	return domain.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Price:       price,
		Description: doc.Description,
	}, nil
}

func mapProductDocsToDomain(docs []productDoc) ([]domain.Product, error) {
	var products []domain.Product

	for _, doc := range docs {
		product, err := mapProductDocToDomain(doc)
		if err != nil {
			return nil, fmt.Errorf("mapProductDocToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
