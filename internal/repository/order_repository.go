package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

type orderDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Products  []primitive.ObjectID `bson:"products"`
	Total     primitive.Decimal128 `bson:"total"`
	CreatedAt time.Time            `bson:"createdAt"`
}

type orderRepository struct {
	orders *mongo.Collection
}

func NewOrder(db *mongo.Database) port.OrderRepository {
	return &orderRepository{
		orders: db.Collection(ordersCollection),
	}
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var o domain.Order

	total, err := decimalToBSON(order.Total)
	if err != nil {
		return o, fmt.Errorf("decimalToBSON: %w", err)
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	// References are stored verbatim, the store accepts ids that match nothing.
	doc := orderDoc{
		ID:        primitive.NewObjectID(),
		User:      order.UserID,
		Products:  order.ProductIDs,
		Total:     total,
		CreatedAt: createdAt,
	}

	if _, err := r.orders.InsertOne(ctx, doc); err != nil {
		return o, fmt.Errorf("orders.InsertOne: %w", err)
	}

	return mapOrderDocToDomain(doc)
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID primitive.ObjectID) (domain.Order, error) {
	var o domain.Order

	var doc orderDoc
	if err := r.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return o, fmt.Errorf("orders.FindOne: %w", domain.ErrNotFound)
		}
		return o, fmt.Errorf("orders.FindOne: %w", err)
	}

	return mapOrderDocToDomain(doc)
}

func (r *orderRepository) ListOrders(ctx context.Context, skip, limit int64) ([]domain.Order, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("orders.Find: %w", err)
	}

	return collectOrders(ctx, cursor)
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	cursor, err := r.orders.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("orders.Find: %w", err)
	}

	return collectOrders(ctx, cursor)
}

func (r *orderRepository) CountOrders(ctx context.Context) (int64, error) {
	total, err := r.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("orders.CountDocuments: %w", err)
	}

	return total, nil
}

func collectOrders(ctx context.Context, cursor *mongo.Cursor) ([]domain.Order, error) {
	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	var orders []domain.Order
	for _, doc := range docs {
		order, err := mapOrderDocToDomain(doc)
		if err != nil {
			return nil, fmt.Errorf("mapOrderDocToDomain: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func mapOrderDocToDomain(doc orderDoc) (domain.Order, error) {
	total, err := decimalFromBSON(doc.Total)
	if err != nil {
		return domain.Order{}, fmt.Errorf("decimalFromBSON: %w", err)
	}

	return domain.Order{
		ID:         doc.ID,
		UserID:     doc.User,
		ProductIDs: doc.Products,
		Total:      total,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
