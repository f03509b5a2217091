package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/models"
	"github.com/kendall-kelly/freelance-api/store"
)

// OrderRequest represents the request body for creating or replacing an order.
// Dates use YYYY/MM/DD. Address is optional; customer and executor ids are not
// checked against the users table.
type OrderRequest struct {
	Name        *string      `json:"name" binding:"required"`
	Description *string      `json:"description" binding:"required"`
	StartDate   *models.Date `json:"start_date" binding:"required"`
	EndDate     *models.Date `json:"end_date" binding:"required"`
	Address     *string      `json:"address"`
	Price       *int         `json:"price" binding:"required"`
	CustomerID  *uint        `json:"customer_id" binding:"required"`
	ExecutorID  *uint        `json:"executor_id" binding:"required"`
}

func (r *OrderRequest) apply(o *models.Order) {
	o.Name = *r.Name
	o.Description = *r.Description
	o.StartDate = *r.StartDate
	o.EndDate = *r.EndDate
	o.Address = r.Address
	o.Price = *r.Price
	o.CustomerID = *r.CustomerID
	o.ExecutorID = *r.ExecutorID
}

// OrderController serves the /orders resource
type OrderController struct {
	orders *store.Repository[models.Order]
}

// NewOrderController creates a controller backed by st
func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{orders: st.Orders}
}

// ListOrders handles GET /orders
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.orders.List(c.Request.Context())
	if err != nil {
		storeErrorResponse(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	var order models.Order
	req.apply(&order)
	if err := oc.orders.Create(c.Request.Context(), &order); err != nil {
		storeErrorResponse(c, err, "order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), id)
	if err != nil {
		storeErrorResponse(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/:id - replaces every field of the order
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := oc.orders.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		storeErrorResponse(c, err, "order")
		return
	}
	messageResponse(c, "order_changed", order)
}

// DeleteOrder handles DELETE /orders/:id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := oc.orders.Delete(c.Request.Context(), id); err != nil {
		storeErrorResponse(c, err, "order")
		return
	}
	messageResponse(c, "order_deleted", nil)
}
