package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/Nurmurod23/Backend-store/controllers/admin"
	productcontroller "github.com/Nurmurod23/Backend-store/controllers/product"
	"github.com/Nurmurod23/Backend-store/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a
// valid token whose user holds the admin flag.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		productAdmin := admin.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		userAdmin := admin.Group("/users")
		{
			userAdmin.GET("", adminController.GetAllUsers(db))
			userAdmin.PUT("/:id", adminController.UpdateUser(db))
			userAdmin.DELETE("/:id", adminController.DeleteUser(db))
		}

		orderAdmin := admin.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrders(db))
			orderAdmin.PUT("/:id", adminController.UpdateFulfillment(db))
		}

		admin.GET("/dashboard", adminController.Dashboard(db))
	}
}
