package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
)

// GET /api/admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productCount, userCount, orderCount int64
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			log.Println("❌ admin: dashboard count failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			log.Println("❌ admin: dashboard count failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			log.Println("❌ admin: dashboard count failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var revenue float64
		if err := db.Model(&models.Order{}).
			Where("is_paid = ?", true).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&revenue).Error; err != nil {
			log.Println("❌ admin: revenue query failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product_count": productCount,
			"user_count":    userCount,
			"order_count":   orderCount,
			"revenue":       revenue,
		})
	}
}
