package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/mailer"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignDeliveryRequest struct {
	DeliveryAgentID string `json:"delivery_agent_id" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// validTransition enforces the order lifecycle:
// pending -> shipped -> delivered, with cancellation only before shipping.
func validTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusShipped || to == models.OrderStatusCancelled
	case models.OrderStatusShipped:
		return to == models.OrderStatusDelivered
	default:
		return false
	}
}

// -------- Handlers --------

// POST /orders/place
//
// No request body: the authenticated user's cart is the input. Any failure
// aborts the whole checkout and surfaces the reason verbatim with a 5xx
// status; the caller does not retry.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		result, err := PlaceUserOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		// Post-commit notifications, best-effort
		broadcastNewOrder(result.Order)
		var user models.User
		if db.First(&user, "id = ?", userID).Error == nil {
			go mailer.OrderConfirmation(user.Email, result.Order.OrderRef, result.Total)
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Order placed successfully",
			"orderTotal": result.Total,
			"itemCount":  result.ItemCount,
		})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Preload("User").
			Preload("Items").
			Order("purchased_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("purchased_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderRef
func GetOrderByRefHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderRef is required"})
			return
		}

		var order models.Order
		if err := db.Scopes(models.Active).
			Preload("User").
			Preload("Items").
			Where("order_ref = ?", ref).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderRef/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Scopes(models.Active).Where("order_ref = ?", ref).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !validTransition(order.Status, newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status transition"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		order.Status = newStatus
		broadcastNewOrder(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /admin/orders/:orderRef/assign
func AssignDeliveryAgentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		var req AssignDeliveryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var agent models.User
		if err := db.Scopes(models.Active).
			Where("id = ? AND role = ?", req.DeliveryAgentID, models.RoleDelivery).
			First(&agent).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery agent not found"})
			return
		}

		result := db.Model(&models.Order{}).
			Where("order_ref = ?", ref).
			Update("delivery_agent_id", agent.ID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign delivery agent"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery agent assigned"})
	}
}

// GET /delivery/orders
func GetAssignedOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID, _ := c.Get("user_id")
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Where("delivery_agent_id = ?", agentID).
			Preload("User").
			Preload("Items").
			Order("purchased_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /delivery/orders/:orderRef/delivered
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID, _ := c.Get("user_id")
		ref := c.Param("orderRef")

		var order models.Order
		if err := db.Scopes(models.Active).
			Where("order_ref = ? AND delivery_agent_id = ?", ref, agentID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !validTransition(order.Status, models.OrderStatusDelivered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order is not out for delivery"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusDelivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order marked delivered"})
	}
}

// PUT /user/orders/:orderRef/cancel
//
// A user can cancel their own order while it is still pending.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		ref := c.Param("orderRef")

		var order models.Order
		if err := db.Scopes(models.Active).
			Where("order_ref = ? AND user_id = ?", ref, userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !validTransition(order.Status, models.OrderStatusCancelled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order can no longer be cancelled"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}
