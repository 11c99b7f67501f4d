package adminController

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
	"github.com/Nurmurod23/Backend-store/utils"
)

type FulfillmentInput struct {
	IsPaid      *bool `json:"is_paid"`
	IsDelivered *bool `json:"is_delivered"`
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Preload("User", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "name", "email")
			}).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Println("❌ admin: orders list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/admin/orders/:id
//
// Each fulfillment flag is applied independently. Setting a flag true
// stamps its timestamp with the current time; setting it false clears the
// timestamp; an absent flag leaves both untouched.
func UpdateFulfillment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var input FulfillmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Println("❌ admin: order fetch failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		updates := make(map[string]interface{})
		if input.IsPaid != nil {
			order.IsPaid = *input.IsPaid
			if *input.IsPaid {
				now := time.Now()
				order.PaidAt = &now
			} else {
				order.PaidAt = nil
			}
			updates["is_paid"] = order.IsPaid
			updates["paid_at"] = order.PaidAt
		}
		if input.IsDelivered != nil {
			order.IsDelivered = *input.IsDelivered
			if *input.IsDelivered {
				now := time.Now()
				order.DeliveredAt = &now
			} else {
				order.DeliveredAt = nil
			}
			updates["is_delivered"] = order.IsDelivered
			updates["delivered_at"] = order.DeliveredAt
		}

		if len(updates) > 0 {
			if err := db.Model(&order).Updates(updates).Error; err != nil {
				log.Println("❌ admin: fulfillment update failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}

		c.JSON(http.StatusOK, order)
	}
}
