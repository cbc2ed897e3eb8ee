package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	GetOrder(ctx context.Context, orderID primitive.ObjectID) (domain.Order, error)

	ListOrders(ctx context.Context, skip, limit int64) ([]domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	CountOrders(ctx context.Context) (int64, error)
}
