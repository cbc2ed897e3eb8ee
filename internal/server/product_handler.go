package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(c, err)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), domain.Product{
		Name:        req.Name,
		Price:       decimal.NewFromFloat(*req.Price),
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProductResponse(product))
}

func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	env, err := h.products.ListProducts(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductPageResponse(env))
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := objectIDParam(c)
	if !ok {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}
