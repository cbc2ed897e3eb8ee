package server

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/menaget/ordermgmt/internal/domain"
)

type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description,omitempty"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.NotNil, validation.Min(0.0)),
	)
}

type CreateOrderRequest struct {
	User     string   `json:"user"`
	Products []string `json:"products"`
	Total    *float64 `json:"total"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.User, validation.Required, is.MongoID),
		validation.Field(&r.Products, validation.Required, validation.Each(is.MongoID)),
		validation.Field(&r.Total, validation.NotNil),
	)
}

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

func newUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID.Hex(),
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

func newProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
	}
}

func newProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, newProductResponse(p))
	}
	return responses
}

type ProductPageResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Pages    int               `json:"pages"`
}

func newProductPageResponse(page domain.ProductPage) ProductPageResponse {
	return ProductPageResponse{
		Products: newProductResponses(page.Products),
		Total:    page.Total,
		Pages:    page.Pages,
	}
}

type OrderUserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderResponse carries the populated shape: user reduced to name and email,
// null when the reference dangles.
type OrderResponse struct {
	ID        string             `json:"id"`
	User      *OrderUserResponse `json:"user"`
	Products  []ProductResponse  `json:"products"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}

func newOrderResponse(o domain.PopulatedOrder) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID.Hex(),
		Products:  newProductResponses(o.Products),
		Total:     o.Total.InexactFloat64(),
		CreatedAt: o.CreatedAt,
	}

	if o.User != nil {
		resp.User = &OrderUserResponse{Name: o.User.Name, Email: o.User.Email}
	}

	return resp
}

type OrderPageResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Pages  int             `json:"pages"`
}

func newOrderPageResponse(page domain.OrderPage) OrderPageResponse {
	orders := make([]OrderResponse, 0, len(page.Orders))
	for _, o := range page.Orders {
		orders = append(orders, newOrderResponse(o))
	}

	return OrderPageResponse{
		Orders: orders,
		Total:  page.Total,
		Pages:  page.Pages,
	}
}

// CreatedOrderResponse is the write-path shape: references echoed verbatim.
type CreatedOrderResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Products  []string  `json:"products"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCreatedOrderResponse(o domain.Order) CreatedOrderResponse {
	products := make([]string, 0, len(o.ProductIDs))
	for _, id := range o.ProductIDs {
		products = append(products, id.Hex())
	}

	return CreatedOrderResponse{
		ID:        o.ID.Hex(),
		User:      o.UserID.Hex(),
		Products:  products,
		Total:     o.Total.InexactFloat64(),
		CreatedAt: o.CreatedAt,
	}
}

// UserOrderResponse is an order inside a user's history: products populated,
// user left as the raw id.
type UserOrderResponse struct {
	ID        string            `json:"id"`
	User      string            `json:"user"`
	Products  []ProductResponse `json:"products"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"createdAt"`
}

type UserOrdersResponse struct {
	Name   string              `json:"name"`
	Email  string              `json:"email"`
	Orders []UserOrderResponse `json:"orders"`
}

func newUserOrdersResponse(uo domain.UserOrders) UserOrdersResponse {
	orders := make([]UserOrderResponse, 0, len(uo.Orders))
	for _, o := range uo.Orders {
		orders = append(orders, UserOrderResponse{
			ID:        o.ID.Hex(),
			User:      o.UserID.Hex(),
			Products:  newProductResponses(o.Products),
			Total:     o.Total.InexactFloat64(),
			CreatedAt: o.CreatedAt,
		})
	}

	return UserOrdersResponse{
		Name:   uo.Name,
		Email:  uo.Email,
		Orders: orders,
	}
}
