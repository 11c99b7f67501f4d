package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nurmurod23/Backend-store/models"
	"github.com/Nurmurod23/Backend-store/utils"
)

type OrderItemInput struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	Quantity  int      `json:"quantity" binding:"required,gte=1"`
	ImageURL  string   `json:"image_url"`
}

type PlaceOrderInput struct {
	OrderItems      []OrderItemInput       `json:"order_items" binding:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	TaxPrice        *float64               `json:"tax_price" binding:"required,gte=0"`
	ShippingPrice   *float64               `json:"shipping_price" binding:"required,gte=0"`
	TotalPrice      *float64               `json:"total_price" binding:"required,gte=0"`
}

// POST /api/orders
//
// Orders capture name/price/image at order time; they are immutable
// snapshots, only the fulfillment flags change afterwards.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
			return
		}

		items := make([]models.OrderItem, 0, len(input.OrderItems))
		for _, it := range input.OrderItems {
			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     *it.Price,
				Quantity:  it.Quantity,
				ImageURL:  it.ImageURL,
			})
		}

		order := models.Order{
			UserID:          userID,
			Items:           items,
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
			TaxPrice:        *input.TaxPrice,
			ShippingPrice:   *input.ShippingPrice,
			TotalPrice:      *input.TotalPrice,
		}

		if err := db.Create(&order).Error; err != nil {
			log.Println("❌ orders: create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Println("❌ orders: list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/search?query=
func SearchOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}

		pattern := "%" + strings.ToLower(query) + "%"
		var orders []models.Order
		err := db.Distinct("orders.*").
			Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
			Where("orders.user_id = ?", userID).
			Where(db.Where("lower(order_items.name) LIKE ?", pattern).
				Or("lower(orders.payment_method) LIKE ?", pattern).
				Or("lower(orders.shipping_address) LIKE ?", pattern).
				Or("lower(orders.shipping_city) LIKE ?", pattern).
				Or("lower(orders.shipping_country) LIKE ?", pattern)).
			Preload("Items").
			Find(&orders).Error
		if err != nil {
			log.Println("❌ orders: search failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Println("❌ orders: fetch failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
