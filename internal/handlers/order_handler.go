package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"flower_shop/internal/middleware"
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder persists the order and triggers the notification fan-out. A
// notification failure never fails the request.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.UserID(c)
	log.Printf("User %d creating new order for user_id=%d", actor, req.UserID)

	order, err := h.orderService.CreateOrder(&req, actor)
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.UserID(c)
	log.Printf("User %d updating order %d", actor, orderID)

	order, err := h.orderService.UpdateOrder(orderID, &req, actor)
	if err != nil {
		log.Printf("Failed to update order: %v", err)
		respondError(c, err,
			fmt.Sprintf("Order with id %d not found", orderID),
			"Failed to update order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetMyOrders returns only the authenticated user's orders.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := middleware.UserID(c)
	log.Printf("User %d fetching their orders", userID)

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Failed to fetch user orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d fetching order %d", middleware.UserID(c), orderID)

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondError(c, err,
			fmt.Sprintf("Order with id %d not found", orderID),
			"Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filter repository.OrderFilter
	if raw := c.Query("order_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id"})
			return
		}
		orderID := uint(id)
		filter.OrderID = &orderID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	log.Printf("User %d fetching orders with filters", middleware.UserID(c))

	orders, err := h.orderService.ListOrders(filter)
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d deleting order %d", middleware.UserID(c), orderID)

	if err := h.orderService.DeleteOrder(orderID); err != nil {
		log.Printf("Failed to delete order: %v", err)
		respondError(c, err,
			fmt.Sprintf("Order with id %d not found", orderID),
			"Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Order %d deleted", orderID)})
}
