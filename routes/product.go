package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Nurmurod23/Backend-store/controllers/product"
	"github.com/Nurmurod23/Backend-store/middleware"
)

// SetupProductRoutes registers all "/api/products/*" endpoints. Browsing
// is public; like/unlike require a token.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		liked := products.Group("")
		liked.Use(middleware.ValidateToken)
		{
			liked.POST("/like/:id", productcontroller.LikeProduct(db))
			liked.POST("/unlike/:id", productcontroller.UnlikeProduct(db))
		}
	}
}
