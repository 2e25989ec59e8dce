package clientstore

import (
	"context"
	"math"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/routes"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "storefront.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, db)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price models.Numeric, salePrice *models.Numeric) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, SalePrice: salePrice, Stock: 10}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestCartStoreAddMergesLines(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)
	store := NewCartStore(NewClient(server.URL), "u1", "")

	if err := store.AddItem(ctx, widget, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := store.AddItem(ctx, widget, 2); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("items = %+v, want one line with quantity 3", items)
	}
	if store.TotalItems() != 3 {
		t.Fatalf("TotalItems = %d, want 3", store.TotalItems())
	}

	// The server agrees line-by-line.
	var rows []models.CartItem
	if err := db.Where("user_id = ?", "u1").Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 1 || rows[0].Quantity != 3 {
		t.Fatalf("server rows = %+v", rows)
	}
}

func TestCartStoreUpdateQuantityZeroRemovesLine(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)
	store := NewCartStore(NewClient(server.URL), "u1", "")

	if err := store.AddItem(ctx, widget, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.UpdateQuantity(ctx, widget.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("items = %+v, want empty", store.Items())
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", "u1").Count(&count)
	if count != 0 {
		t.Fatalf("server still has %d rows", count)
	}
}

func TestCartStoreTotalPricePrefersSalePrice(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	sale := models.Numeric("15.00")
	widget := seedProduct(t, db, "Widget", "19.99", &sale)
	gadget := seedProduct(t, db, "Gadget", "5.50", nil)

	store := NewCartStore(NewClient(server.URL), "u1", "")
	if err := store.AddItem(ctx, widget, 2); err != nil {
		t.Fatalf("add widget: %v", err)
	}
	if err := store.AddItem(ctx, gadget, 1); err != nil {
		t.Fatalf("add gadget: %v", err)
	}

	want := 2*15.00 + 5.50
	if got := store.TotalPrice(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalPrice = %v, want %v", got, want)
	}
}

func TestCartStorePersistsAcrossRestarts(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)
	path := filepath.Join(t.TempDir(), "cart.json")

	store := NewCartStore(NewClient(server.URL), "u1", path)
	if err := store.AddItem(ctx, widget, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	store.ToggleOpen()

	reopened := NewCartStore(NewClient(server.URL), "", path)
	if reopened.UserID() != "u1" {
		t.Fatalf("UserID = %q, want u1", reopened.UserID())
	}
	items := reopened.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("items after restart = %+v", items)
	}
	// The drawer flag is deliberately not persisted.
	if reopened.IsOpen() {
		t.Fatal("open flag survived a restart")
	}
}

func TestCartStoreFailedMutationLeavesStateUntouched(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)
	store := NewCartStore(NewClient(server.URL), "u1", "")
	if err := store.AddItem(ctx, widget, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	phantom := models.Product{ID: "no-such-product", Name: "Phantom", Price: "1.00"}
	if err := store.AddItem(ctx, phantom, 1); err == nil {
		t.Fatal("expected the API to reject an unknown product")
	}

	items := store.Items()
	if len(items) != 1 || items[0].ProductID != widget.ID {
		t.Fatalf("items after failed add = %+v", items)
	}
}

func TestCartStoreRefreshMirrorsServer(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)

	// Another session fills the cart; this store starts empty.
	other := NewCartStore(NewClient(server.URL), "u1", "")
	if err := other.AddItem(ctx, widget, 4); err != nil {
		t.Fatalf("seed via other session: %v", err)
	}

	store := NewCartStore(NewClient(server.URL), "u1", "")
	if len(store.Items()) != 0 {
		t.Fatalf("fresh store not empty: %+v", store.Items())
	}
	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 4 || items[0].Product.Name != "Widget" {
		t.Fatalf("items after refresh = %+v", items)
	}
}

func TestCartStoreSubscribe(t *testing.T) {
	server, db := newTestServer(t)
	ctx := context.Background()

	widget := seedProduct(t, db, "Widget", "19.99", nil)
	store := NewCartStore(NewClient(server.URL), "u1", "")

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	if err := store.AddItem(ctx, widget, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	unsubscribe()
	if err := store.AddItem(ctx, widget, 1); err != nil {
		t.Fatalf("add after unsubscribe: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls after unsubscribe = %d, want 1", calls)
	}
}
