package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
	"github.com/Nurmurod23/Backend-store/utils"
)

type RegisterInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/auth/register
//
// Provisions the user together with its empty cart. All three writes
// (user, cart, back-reference) land in one transaction so callers never
// see a user without a cart or an orphaned cart.
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("❌ register: hashing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		// Admin accounts come from the seed step or an admin-gated user
		// update, never from the registration payload.
		user := models.User{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Email:     email,
			Password:  string(hashed),
			AvatarURL: input.AvatarURL,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			cart := models.Cart{UserID: user.ID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
			return tx.Model(&user).Update("cart_id", cart.ID).Error
		})
		if err != nil {
			// The unique index on email is the single source of truth for
			// duplicates; there is no pre-check to race against.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
				return
			}
			log.Println("❌ register: provisioning failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		token, err := GenerateToken(&user)
		if err != nil {
			log.Println("❌ register: token signing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user_id": user.ID, "token": token})
	}
}

// POST /api/auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		// Unknown email and wrong password must be indistinguishable.
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("❌ login: lookup failed:", err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := GenerateToken(&user)
		if err != nil {
			log.Println("❌ login: token signing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
