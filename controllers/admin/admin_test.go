package adminController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nurmurod23/Backend-store/auth"
	"github.com/Nurmurod23/Backend-store/models"
	"github.com/Nurmurod23/Backend-store/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email string, admin bool) (models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{ID: uuid.NewString(), Name: "Test User", Email: email, Password: string(hashed), IsAdmin: admin}
	require.NoError(t, db.Create(&user).Error)

	token, err := auth.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func createOrder(t *testing.T, db *gorm.DB, userID string, total float64, paid bool) models.Order {
	t.Helper()
	order := models.Order{
		UserID: userID,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Widget", Price: total, Quantity: 1},
		},
		ShippingAddress: models.ShippingAddress{
			Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "USA",
		},
		PaymentMethod: "card",
		TotalPrice:    total,
		IsPaid:        paid,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderPath(id uint) string {
	return "/api/admin/orders/" + strconv.FormatUint(uint64(id), 10)
}

func TestAdminGateIsEnforced(t *testing.T) {
	r, db := setupRouter(t)
	_, userToken := createUser(t, db, "user@example.com", false)

	w := doRequest(t, r, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/admin/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFulfillmentFlagStamping(t *testing.T) {
	r, db := setupRouter(t)
	user, _ := createUser(t, db, "user@example.com", false)
	_, adminToken := createUser(t, db, "admin@example.com", true)
	order := createOrder(t, db, user.ID, 42.0, false)

	// is_paid=true stamps paid_at, is_delivered untouched
	w := doRequest(t, r, http.MethodPut, orderPath(order.ID), adminToken, gin.H{"is_paid": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.True(t, got.IsPaid)
	assert.NotNil(t, got.PaidAt)
	assert.False(t, got.IsDelivered)
	assert.Nil(t, got.DeliveredAt)

	// is_paid=false clears paid_at, is_delivered still untouched
	w = doRequest(t, r, http.MethodPut, orderPath(order.ID), adminToken, gin.H{"is_paid": false})
	require.Equal(t, http.StatusOK, w.Code)

	// fresh struct per read: a NULL column leaves the destination field
	// untouched, so reusing the previous read would mask a cleared stamp
	got = models.Order{}
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.False(t, got.IsPaid)
	assert.Nil(t, got.PaidAt)
	assert.False(t, got.IsDelivered)
	assert.Nil(t, got.DeliveredAt)

	// is_delivered applies independently of the paid state
	w = doRequest(t, r, http.MethodPut, orderPath(order.ID), adminToken, gin.H{"is_delivered": true})
	require.Equal(t, http.StatusOK, w.Code)

	got = models.Order{}
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.False(t, got.IsPaid)
	assert.Nil(t, got.PaidAt)
	assert.True(t, got.IsDelivered)
	assert.NotNil(t, got.DeliveredAt)

	// empty body leaves everything alone
	w = doRequest(t, r, http.MethodPut, orderPath(order.ID), adminToken, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	got = models.Order{}
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.True(t, got.IsDelivered)
	assert.NotNil(t, got.DeliveredAt)
}

func TestFulfillmentUnknownOrder(t *testing.T) {
	r, db := setupRouter(t)
	_, adminToken := createUser(t, db, "admin@example.com", true)

	w := doRequest(t, r, http.MethodPut, "/api/admin/orders/9999", adminToken, gin.H{"is_paid": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUserManagement(t *testing.T) {
	r, db := setupRouter(t)
	user, _ := createUser(t, db, "user@example.com", false)
	_, adminToken := createUser(t, db, "admin@example.com", true)

	w := doRequest(t, r, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	// promote, then verify the flag landed
	w = doRequest(t, r, http.MethodPut, "/api/admin/users/"+user.ID, adminToken, gin.H{"is_admin": true})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsAdmin)

	// delete removes the user and their cart
	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	w = doRequest(t, r, http.MethodDelete, "/api/admin/users/"+user.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.ErrorIs(t, db.First(&models.User{}, "id = ?", user.ID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&models.Cart{}, "user_id = ?", user.ID).Error, gorm.ErrRecordNotFound)
}

func TestDashboard(t *testing.T) {
	r, db := setupRouter(t)
	user, _ := createUser(t, db, "user@example.com", false)
	_, adminToken := createUser(t, db, "admin@example.com", true)

	require.NoError(t, db.Create(&models.Product{Name: "Widget", Description: "d", Price: 10}).Error)
	createOrder(t, db, user.ID, 100.0, true)
	createOrder(t, db, user.ID, 50.0, false)

	w := doRequest(t, r, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ProductCount int64   `json:"product_count"`
		UserCount    int64   `json:"user_count"`
		OrderCount   int64   `json:"order_count"`
		Revenue      float64 `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.ProductCount)
	assert.EqualValues(t, 2, resp.UserCount)
	assert.EqualValues(t, 2, resp.OrderCount)
	assert.Equal(t, 100.0, resp.Revenue, "only paid orders count toward revenue")
}
