package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID      primitive.ObjectID
	Name    string
	Email   string
	Address string
}

// UserOrders is the read model for a user's order history: contact fields of
// the user plus every order placed by the user, with products populated.
type UserOrders struct {
	Name   string
	Email  string
	Orders []PopulatedOrder
}
