package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/auth"
	userControllers "github.com/Nurmurod23/Backend-store/controllers/user"
	"github.com/Nurmurod23/Backend-store/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))

		profile := authGroup.Group("")
		profile.Use(middleware.ValidateToken)
		{
			profile.GET("/me", userControllers.GetMe(db))
			profile.PUT("/me", userControllers.UpdateMe(db))
			profile.DELETE("/profile", userControllers.DeleteAccount(db))
		}
	}
}
