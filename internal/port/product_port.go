package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
)

type ProductRepository interface {
	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)

	GetProduct(ctx context.Context, productID primitive.ObjectID) (domain.Product, error)
	GetProductsByIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]domain.Product, error)

	ListProducts(ctx context.Context, skip, limit int64) ([]domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
}
