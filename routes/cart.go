package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Nurmurod23/Backend-store/controllers/cart"
	"github.com/Nurmurod23/Backend-store/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Every route is
// keyed by the authenticated user.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddItem(db))
		cart.PUT("/:productId", cartControllers.SetItemQuantity(db))
		cart.DELETE("/:productId", cartControllers.RemoveItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
