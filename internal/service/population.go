package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

// populateOrders resolves both references of each order: the user is reduced
// to its name and email, products are expanded to full records. One batched
// query per collection covers the whole slice. Dangling references are not an
// error: a missing user leaves User nil, missing products are absent from
// Products.
func populateOrders(ctx context.Context, users port.UserRepository, products port.ProductRepository, orders []domain.Order) ([]domain.PopulatedOrder, error) {
	productsByID, err := resolveProducts(ctx, products, orders)
	if err != nil {
		return nil, fmt.Errorf("resolveProducts: %w", err)
	}

	userIDs := lo.Uniq(lo.Map(orders, func(o domain.Order, _ int) primitive.ObjectID {
		return o.UserID
	}))

	fetched, err := users.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("users.GetUsersByIDs: %w", err)
	}

	usersByID := lo.KeyBy(fetched, func(u domain.User) primitive.ObjectID { return u.ID })

	populated := make([]domain.PopulatedOrder, 0, len(orders))
	for _, order := range orders {
		p := assemblePopulatedOrder(order, productsByID)

		if user, ok := usersByID[order.UserID]; ok {
			p.User = &domain.OrderUser{Name: user.Name, Email: user.Email}
		}

		populated = append(populated, p)
	}

	return populated, nil
}

// populateOrderProducts resolves only the product references, leaving the
// user as a raw id. This is the shape of a user's order history.
func populateOrderProducts(ctx context.Context, products port.ProductRepository, orders []domain.Order) ([]domain.PopulatedOrder, error) {
	productsByID, err := resolveProducts(ctx, products, orders)
	if err != nil {
		return nil, fmt.Errorf("resolveProducts: %w", err)
	}

	populated := make([]domain.PopulatedOrder, 0, len(orders))
	for _, order := range orders {
		populated = append(populated, assemblePopulatedOrder(order, productsByID))
	}

	return populated, nil
}

func resolveProducts(ctx context.Context, products port.ProductRepository, orders []domain.Order) (map[primitive.ObjectID]domain.Product, error) {
	productIDs := lo.Uniq(lo.FlatMap(orders, func(o domain.Order, _ int) []primitive.ObjectID {
		return o.ProductIDs
	}))

	fetched, err := products.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("products.GetProductsByIDs: %w", err)
	}

	return lo.KeyBy(fetched, func(p domain.Product) primitive.ObjectID { return p.ID }), nil
}

// assemblePopulatedOrder keeps the reference array order, duplicates included.
func assemblePopulatedOrder(order domain.Order, productsByID map[primitive.ObjectID]domain.Product) domain.PopulatedOrder {
	p := domain.PopulatedOrder{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}

	for _, productID := range order.ProductIDs {
		if product, ok := productsByID[productID]; ok {
			p.Products = append(p.Products, product)
		}
	}

	return p
}
