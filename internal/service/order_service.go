package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

type OrderService struct {
	orders   port.OrderRepository
	users    port.UserRepository
	products port.ProductRepository
}

func NewOrder(orders port.OrderRepository, users port.UserRepository, products port.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// CreateOrder stores the order with its references verbatim. Whether the
// user or products exist is not checked at write time.
func (s *OrderService) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	return created, nil
}

// GetOrder returns the order with both references populated.
func (s *OrderService) GetOrder(ctx context.Context, orderID primitive.ObjectID) (domain.PopulatedOrder, error) {
	var po domain.PopulatedOrder

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return po, fmt.Errorf("orders.GetOrder: %w", err)
	}

	populated, err := populateOrders(ctx, s.users, s.products, []domain.Order{order})
	if err != nil {
		return po, fmt.Errorf("populateOrders: %w", err)
	}

	return populated[0], nil
}

// ListOrders pages through all orders, both references populated per order.
// The ranged query and the count fan out concurrently; no caching here.
func (s *OrderService) ListOrders(ctx context.Context, page, limit int) (domain.OrderPage, error) {
	var (
		orders []domain.Order
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if orders, err = s.orders.ListOrders(gctx, skipFor(page, limit), int64(limit)); err != nil {
			return fmt.Errorf("orders.ListOrders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = s.orders.CountOrders(gctx); err != nil {
			return fmt.Errorf("orders.CountOrders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.OrderPage{}, fmt.Errorf("g.Wait: %w", err)
	}

	populated, err := populateOrders(ctx, s.users, s.products, orders)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("populateOrders: %w", err)
	}

	return domain.OrderPage{
		Orders: populated,
		Total:  total,
		Pages:  pageCount(total, limit),
	}, nil
}
