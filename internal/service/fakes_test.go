package service_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
)

// In-memory fakes for the repository ports. Call counters let tests assert
// which reads were served from the cache instead of the store.

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User

	getCalls      int
	getByIDsCalls int
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[primitive.ObjectID]domain.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) InsertUser(_ context.Context, user domain.User) (domain.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, userID primitive.ObjectID) (domain.User, error) {
	r.getCalls++

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, userIDs []primitive.ObjectID) ([]domain.User, error) {
	r.getByIDsCalls++

	var users []domain.User
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

type fakeProductRepo struct {
	products []domain.Product
	total    int64

	getCalls      int
	getByIDsCalls int
	listCalls     int
	countCalls    int

	lastSkip  int64
	lastLimit int64
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products, total: int64(len(products))}
}

func (r *fakeProductRepo) InsertProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products = append(r.products, product)
	r.total++
	return product, nil
}

func (r *fakeProductRepo) GetProduct(_ context.Context, productID primitive.ObjectID) (domain.Product, error) {
	r.getCalls++

	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (r *fakeProductRepo) GetProductsByIDs(_ context.Context, productIDs []primitive.ObjectID) ([]domain.Product, error) {
	r.getByIDsCalls++

	var products []domain.Product
	for _, p := range r.products {
		for _, id := range productIDs {
			if p.ID == id {
				products = append(products, p)
				break
			}
		}
	}
	return products, nil
}

func (r *fakeProductRepo) ListProducts(_ context.Context, skip, limit int64) ([]domain.Product, error) {
	r.listCalls++
	r.lastSkip, r.lastLimit = skip, limit

	if skip >= int64(len(r.products)) {
		return nil, nil
	}

	end := min(skip+limit, int64(len(r.products)))
	return r.products[skip:end], nil
}

func (r *fakeProductRepo) CountProducts(_ context.Context) (int64, error) {
	r.countCalls++
	return r.total, nil
}

type fakeOrderRepo struct {
	orders []domain.Order

	listCalls       int
	listByUserCalls int
	countCalls      int
}

func newFakeOrderRepo(orders ...domain.Order) *fakeOrderRepo {
	return &fakeOrderRepo{orders: orders}
}

func (r *fakeOrderRepo) InsertOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	// same contract as the mongo repository: CreatedAt is stamped at insert
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *fakeOrderRepo) GetOrder(_ context.Context, orderID primitive.ObjectID) (domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func (r *fakeOrderRepo) ListOrders(_ context.Context, skip, limit int64) ([]domain.Order, error) {
	r.listCalls++

	if skip >= int64(len(r.orders)) {
		return nil, nil
	}

	end := min(skip+limit, int64(len(r.orders)))
	return r.orders[skip:end], nil
}

func (r *fakeOrderRepo) ListOrdersByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	r.listByUserCalls++

	var orders []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) CountOrders(_ context.Context) (int64, error) {
	r.countCalls++
	return int64(len(r.orders)), nil
}

// memCache is a plain map behind the cache port, no TTL or eviction.
type memCache struct {
	entries map[string]any
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]any{}}
}

func (c *memCache) Get(key string) (any, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memCache) Set(key string, value any) {
	c.entries[key] = value
}

func (c *memCache) Delete(key string) {
	delete(c.entries, key)
}
