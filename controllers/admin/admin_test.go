package adminControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "test-api-key")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ecom.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Brand{}, &models.Color{}, &models.Size{},
		&models.Category{}, &models.SubCategory{}, &models.Product{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
		&models.Payment{}, &models.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "secret"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Product {
	t.Helper()
	brand := models.Brand{Name: title + " brand"}
	color := models.Color{Name: title + " color"}
	size := models.Size{Name: title + " size"}
	category := models.Category{Name: title + " category"}
	for _, ref := range []interface{}{&brand, &color, &size, &category} {
		if err := db.Create(ref).Error; err != nil {
			t.Fatalf("seed reference data: %v", err)
		}
	}
	subCategory := models.SubCategory{CategoryID: category.ID, Name: title + " sub category"}
	if err := db.Create(&subCategory).Error; err != nil {
		t.Fatalf("seed sub category: %v", err)
	}

	product := models.Product{
		BrandID:       brand.ID,
		ColorID:       color.ID,
		SizeID:        size.ID,
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		Title:         title,
		Price:         price,
		Stock:         stock,
		Image:         title + ".jpg",
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, product models.Product, qty, status int) models.Order {
	t.Helper()
	amount := float64(qty) * product.Price
	order := models.Order{
		OrderRef: "ref-" + uuid.NewString(),
		UserID:   userID,
		Items: []models.OrderItem{{
			ProductID: product.ID,
			Qty:       qty,
			Price:     product.Price,
			Amount:    amount,
		}},
		SubTotal:    amount,
		FinalAmount: amount,
		Status:      status,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func doAdmin(t *testing.T, r *gin.Engine, method, path, apiKey string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestAdminRequiresAPIKey(t *testing.T) {
	r, _ := setupRouter(t)

	w := doAdmin(t, r, http.MethodGet, "/admin/orders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without api key, got %d", w.Code)
	}

	w = doAdmin(t, r, http.MethodGet, "/admin/orders", "wrong-key", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong api key, got %d", w.Code)
	}
}

func TestAdminGetOrdersIncludesUser(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "shopper@example.com")
	product := seedProduct(t, db, "Sneaker", 100, 10)
	seedOrder(t, db, user.ID, product, 2, models.OrderStatusPlaced)

	w := doAdmin(t, r, http.MethodGet, "/admin/orders", "test-api-key", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var orders []struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		Items []struct {
			Product struct {
				Title string `json:"title"`
			} `json:"product"`
		} `json:"items"`
	}
	env := decode(t, w)
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].User.Email != "shopper@example.com" {
		t.Errorf("expected purchasing user attached, got %+v", orders[0].User)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Product.Title != "Sneaker" {
		t.Errorf("expected expanded items, got %+v", orders[0].Items)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "shopper@example.com")
	product := seedProduct(t, db, "Sneaker", 100, 10)
	order := seedOrder(t, db, user.ID, product, 1, models.OrderStatusPlaced)

	w := doAdmin(t, r, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", order.ID),
		"test-api-key", gin.H{"status": models.OrderStatusCompleted})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Order
	if err := db.First(&updated, "id = ?", order.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if updated.Status != models.OrderStatusCompleted {
		t.Errorf("expected status completed, got %d", updated.Status)
	}
}

func TestAdminUpdateOrderStatusUnknownOrder(t *testing.T) {
	r, _ := setupRouter(t)

	w := doAdmin(t, r, http.MethodPatch, "/admin/orders/999/status",
		"test-api-key", gin.H{"status": models.OrderStatusCompleted})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminGetPayments(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "shopper@example.com")
	product := seedProduct(t, db, "Sneaker", 100, 10)
	order := seedOrder(t, db, user.ID, product, 1, models.OrderStatusPlaced)
	payment := models.Payment{UserID: user.ID, OrderID: order.ID, Status: models.PaymentStatusSucceeded}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	w := doAdmin(t, r, http.MethodGet, "/admin/payments", "test-api-key", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payments []struct {
		Status int `json:"status"`
		Order  struct {
			OrderRef string `json:"order_ref"`
		} `json:"order"`
	}
	env := decode(t, w)
	if err := json.Unmarshal(env.Data, &payments); err != nil {
		t.Fatalf("decode payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	if payments[0].Status != models.PaymentStatusSucceeded || payments[0].Order.OrderRef != order.OrderRef {
		t.Errorf("expected expanded payment, got %+v", payments[0])
	}
}

func TestAdminExportOrdersToExcel(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "shopper@example.com")
	product := seedProduct(t, db, "Sneaker", 100, 10)
	seedOrder(t, db, user.ID, product, 2, models.OrderStatusPlaced)

	w := doAdmin(t, r, http.MethodGet, "/admin/orders/export-excel", "test-api-key", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=orders.xlsx" {
		t.Errorf("unexpected content disposition: %q", got)
	}
	if w.Body.Len() == 0 {
		t.Error("expected a non-empty spreadsheet body")
	}
}

func TestAdminGetUserCart(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "shopper@example.com")
	product := seedProduct(t, db, "Sneaker", 100, 10)
	cart := models.Cart{
		UserID: user.ID,
		Items: []models.CartItem{{
			ProductID: product.ID,
			Qty:       1,
			Price:     product.Price,
			Amount:    product.Price,
		}},
		SubTotal:    product.Price,
		FinalAmount: product.Price,
	}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	w := doAdmin(t, r, http.MethodGet, fmt.Sprintf("/admin/carts/%d", user.ID), "test-api-key", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Items []struct {
			Qty int `json:"qty"`
		} `json:"items"`
	}
	env := decode(t, w)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0].Qty != 1 {
		t.Errorf("expected the user's cart items, got %+v", data.Items)
	}
}

func TestAdminCreateProduct(t *testing.T) {
	r, db := setupRouter(t)
	existing := seedProduct(t, db, "Sneaker", 100, 10)

	w := doAdmin(t, r, http.MethodPost, "/admin/products", "test-api-key", gin.H{
		"brand":        existing.BrandID,
		"color":        existing.ColorID,
		"size":         existing.SizeID,
		"category":     existing.CategoryID,
		"sub_category": existing.SubCategoryID,
		"title":        "Runner",
		"description":  "Lightweight running shoe",
		"price":        120.0,
		"qty":          8,
		"image":        "runner.jpg",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.Where("title = ?", "Runner").First(&product).Error; err != nil {
		t.Fatalf("expected product to be created: %v", err)
	}
	if product.Price != 120 || product.Stock != 8 {
		t.Errorf("unexpected product: price=%v stock=%d", product.Price, product.Stock)
	}
}
