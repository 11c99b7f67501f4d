package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
)

// POST /api/products/like/:id
func LikeProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Println("❌ products: fetch failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		var user models.User
		if err := db.Preload("LikedProducts").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		for _, liked := range user.LikedProducts {
			if liked.ID == product.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product already liked"})
				return
			}
		}

		if err := db.Model(&user).Association("LikedProducts").Append(&product); err != nil {
			log.Println("❌ products: like failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like product"})
			return
		}

		c.JSON(http.StatusOK, append(user.LikedProducts, product))
	}
}

// POST /api/products/unlike/:id
func UnlikeProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Println("❌ products: fetch failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		var user models.User
		if err := db.Preload("LikedProducts").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		liked := false
		remaining := make([]models.Product, 0, len(user.LikedProducts))
		for _, p := range user.LikedProducts {
			if p.ID == product.ID {
				liked = true
				continue
			}
			remaining = append(remaining, p)
		}
		if !liked {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product has not been liked"})
			return
		}

		if err := db.Model(&user).Association("LikedProducts").Delete(&product); err != nil {
			log.Println("❌ products: unlike failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike product"})
			return
		}

		c.JSON(http.StatusOK, remaining)
	}
}
