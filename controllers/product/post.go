package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
	"github.com/Nurmurod23/Backend-store/utils"
)

type CreateProductInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Price        *float64 `json:"price" binding:"required,gt=0"`
	CountInStock *int     `json:"count_in_stock" binding:"required,gte=0"`
	ImageURL     string   `json:"image_url" binding:"omitempty,url"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
			return
		}

		product := models.Product{
			Name:         input.Name,
			Description:  input.Description,
			Price:        *input.Price,
			CountInStock: *input.CountInStock,
			ImageURL:     input.ImageURL,
		}

		if err := db.Create(&product).Error; err != nil {
			log.Println("❌ products: create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
