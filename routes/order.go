package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Nurmurod23/Backend-store/controllers/order"
	"github.com/Nurmurod23/Backend-store/middleware"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrder(db))
		orders.GET("", orderControllers.GetMyOrders(db))
		orders.GET("/search", orderControllers.SearchOrders(db))

		// live feed of new orders for admin dashboards
		orders.GET("/feed", middleware.RequireAdmin(db), orderControllers.OrderFeedHandler)

		orders.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
