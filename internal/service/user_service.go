package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

type UserService struct {
	users    port.UserRepository
	orders   port.OrderRepository
	products port.ProductRepository
}

func NewUser(users port.UserRepository, orders port.OrderRepository, products port.ProductRepository) *UserService {
	return &UserService{
		users:    users,
		orders:   orders,
		products: products,
	}
}

// CreateUser inserts the user. A duplicate email fails on the unique index
// and the store error propagates untranslated.
func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.InsertUser: %w", err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, userID primitive.ObjectID) (domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

// GetUserOrders returns the user's contact fields and every order the user
// placed, products populated. The user lookup runs first so an unknown id
// fails before any order work; the full order set is returned, unpaginated.
func (s *UserService) GetUserOrders(ctx context.Context, userID primitive.ObjectID) (domain.UserOrders, error) {
	var uo domain.UserOrders

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return uo, fmt.Errorf("users.GetUser: %w", err)
	}

	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return uo, fmt.Errorf("orders.ListOrdersByUser: %w", err)
	}

	populated, err := populateOrderProducts(ctx, s.products, orders)
	if err != nil {
		return uo, fmt.Errorf("populateOrderProducts: %w", err)
	}

	return domain.UserOrders{
		Name:   user.Name,
		Email:  user.Email,
		Orders: populated,
	}, nil
}
