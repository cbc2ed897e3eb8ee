package domain

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID
	Name        string
	Price       decimal.Decimal
	Description string
}

// ProductPage is the pagination envelope for product listings.
type ProductPage struct {
	Products []Product
	Total    int64
	Pages    int
}
