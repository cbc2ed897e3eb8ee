package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the persisted shape: references are stored verbatim, without any
// referential-integrity check against the users or products collections.
type Order struct {
	ID         primitive.ObjectID
	UserID     primitive.ObjectID
	ProductIDs []primitive.ObjectID
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// OrderUser is the projection of the referenced user carried by a populated order.
type OrderUser struct {
	Name  string
	Email string
}

// PopulatedOrder is an order with its references resolved at read time.
// User is nil when the referenced user does not exist; product ids with no
// matching record are simply absent from Products.
type PopulatedOrder struct {
	ID        primitive.ObjectID
	UserID    primitive.ObjectID
	User      *OrderUser
	Products  []Product
	Total     decimal.Decimal
	CreatedAt time.Time
}

// OrderPage is the pagination envelope for order listings.
type OrderPage struct {
	Orders []PopulatedOrder
	Total  int64
	Pages  int
}
