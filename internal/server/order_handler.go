package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(c, err)
		return
	}

	// Ids are well-formed past validation; whether they reference anything
	// is not checked.
	userID, err := primitive.ObjectIDFromHex(req.User)
	if err != nil {
		writeValidationError(c, err)
		return
	}

	productIDs := make([]primitive.ObjectID, 0, len(req.Products))
	for _, raw := range req.Products {
		productID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			writeValidationError(c, err)
			return
		}
		productIDs = append(productIDs, productID)
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), domain.Order{
		UserID:     userID,
		ProductIDs: productIDs,
		Total:      decimal.NewFromFloat(*req.Total),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCreatedOrderResponse(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := objectIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	env, err := h.orders.ListOrders(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderPageResponse(env))
}
