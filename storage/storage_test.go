package storage

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/Mdken1/storefront-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// busy timeout lets concurrent writers queue instead of failing fast
	path := filepath.Join(t.TempDir(), "storefront.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
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
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := CreateCategory(db, category); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func mustCreateProduct(t *testing.T, db *gorm.DB, p models.Product) *models.Product {
	t.Helper()
	if err := CreateProduct(db, &p); err != nil {
		t.Fatalf("create product %s: %v", p.Name, err)
	}
	return &p
}

func TestProductFilters(t *testing.T) {
	db := newTestDB(t)
	electronics := mustCreateCategory(t, db, "Electronics")
	fashion := mustCreateCategory(t, db, "Fashion")

	mustCreateProduct(t, db, models.Product{Name: "Wireless Headphones", Price: "99.99", CategoryID: &electronics.ID, Featured: true})
	mustCreateProduct(t, db, models.Product{Name: "Wired Headphones", Price: "19.99", CategoryID: &electronics.ID})
	mustCreateProduct(t, db, models.Product{Name: "Denim Jacket", Price: "59.99", CategoryID: &fashion.ID, Featured: true})

	cases := []struct {
		name    string
		filters ProductFilters
		want    []string
	}{
		{"no filters", ProductFilters{}, []string{"Wireless Headphones", "Wired Headphones", "Denim Jacket"}},
		{"category", ProductFilters{CategoryID: electronics.ID}, []string{"Wireless Headphones", "Wired Headphones"}},
		{"search is case-insensitive substring", ProductFilters{Search: "headPHONES"}, []string{"Wireless Headphones", "Wired Headphones"}},
		{"featured", ProductFilters{Featured: true}, []string{"Wireless Headphones", "Denim Jacket"}},
		{"filters combine with AND", ProductFilters{CategoryID: electronics.ID, Search: "wireless", Featured: true}, []string{"Wireless Headphones"}},
		{"no match", ProductFilters{CategoryID: fashion.ID, Search: "headphones"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := GetProducts(db, tc.filters)
			if err != nil {
				t.Fatalf("GetProducts: %v", err)
			}
			if len(products) != len(tc.want) {
				t.Fatalf("got %d products, want %d", len(products), len(tc.want))
			}
			got := map[string]bool{}
			for _, p := range products {
				got[p.Name] = true
			}
			for _, name := range tc.want {
				if !got[name] {
					t.Errorf("missing product %q in result", name)
				}
			}
		})
	}
}

func TestGetProductIncludesCategoryView(t *testing.T) {
	db := newTestDB(t)
	category := mustCreateCategory(t, db, "Electronics")
	with := mustCreateProduct(t, db, models.Product{Name: "Smart Watch", Price: "199.99", CategoryID: &category.ID})
	without := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})

	got, err := GetProduct(db, with.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Category == nil || got.Category.Name != "Electronics" {
		t.Fatalf("expected category view, got %+v", got.Category)
	}

	got, err = GetProduct(db, without.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Category != nil {
		t.Fatalf("expected nil category for uncategorized product, got %+v", got.Category)
	}
}

func TestUpdateProductPartialPatch(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Description: "original", Price: "19.99", Stock: 5})

	name := "Widget Pro"
	stock := models.Units(9)
	updated, err := UpdateProduct(db, product.ID, ProductPatch{Name: &name, Stock: &stock})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Widget Pro" || updated.Stock != 9 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != "original" || updated.Price != "19.99" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := UpdateProduct(db, "missing-id", ProductPatch{Name: &name}); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAddToCartAccumulatesIntoOneRow(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})

	if _, err := AddToCart(db, "u1", product.ID, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	item, err := AddToCart(db, "u1", product.ID, 2)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", item.Quantity)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", "u1").Count(&count)
	if count != 1 {
		t.Fatalf("cart rows = %d, want 1", count)
	}
}

func TestAddToCartConcurrentAddsTotalTwo(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})

	// Two simultaneous adds of 1 for the same (user, product) pair. The
	// single-statement upsert must accumulate both; a read-then-write
	// implementation would lose one.
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := AddToCart(db, "u1", product.ID, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent add: %v", err)
		}
	}

	var rows []models.CartItem
	if err := db.Where("user_id = ?", "u1").Find(&rows).Error; err != nil {
		t.Fatalf("load cart rows: %v", err)
	}
	if len(rows) != 1 || rows[0].Quantity != 2 {
		t.Fatalf("cart rows = %+v, want one row with quantity 2", rows)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	if _, err := AddToCart(db, "u1", "missing-product", 1); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestCartItemsExcludeOtherUsers(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})

	if _, err := AddToCart(db, "u1", product.ID, 1); err != nil {
		t.Fatalf("add u1: %v", err)
	}
	if _, err := AddToCart(db, "u2", product.ID, 4); err != nil {
		t.Fatalf("add u2: %v", err)
	}

	items, err := GetCartItems(db, "u1")
	if err != nil {
		t.Fatalf("GetCartItems: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("unexpected cart for u1: %+v", items)
	}
	if items[0].Product == nil || items[0].Product.Name != "Widget" {
		t.Fatalf("expected product view on cart item, got %+v", items[0].Product)
	}
}

func TestGetCartItemsDropsVanishedProducts(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})
	if _, err := AddToCart(db, "u1", product.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Delete the product row out from under the cart, bypassing the
	// cascading DeleteProduct path.
	if err := db.Exec("DELETE FROM products WHERE id = ?", product.ID).Error; err != nil {
		t.Fatalf("raw delete: %v", err)
	}

	items, err := GetCartItems(db, "u1")
	if err != nil {
		t.Fatalf("GetCartItems: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected stale row to be dropped, got %+v", items)
	}
}

func TestDeleteProductPrunesCartRows(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})
	if _, err := AddToCart(db, "u1", product.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := DeleteProduct(db, product.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("cart rows after delete = %d, want 0", count)
	}

	if err := DeleteProduct(db, product.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestOrderItemsSnapshotPrices(t *testing.T) {
	db := newTestDB(t)
	product := mustCreateProduct(t, db, models.Product{Name: "Widget", Price: "19.99"})

	order := &models.Order{UserID: "u1", Total: "39.98"}
	items := []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, Price: "19.99"},
	}
	created, err := CreateOrderWithItems(db, order, items)
	if err != nil {
		t.Fatalf("CreateOrderWithItems: %v", err)
	}
	if len(created.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(created.Items))
	}

	// A later price edit must not touch the recorded snapshot.
	newPrice := models.Numeric("29.99")
	if _, err := UpdateProduct(db, product.ID, ProductPatch{Price: &newPrice}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	fetched, err := GetOrder(db, created.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if fetched.Items[0].Price != "19.99" {
		t.Fatalf("snapshot price = %s, want 19.99", fetched.Items[0].Price)
	}
	if fetched.Items[0].Product == nil || fetched.Items[0].Product.Price != "29.99" {
		t.Fatalf("expected current product view on item, got %+v", fetched.Items[0].Product)
	}
}

func TestOrderWithoutItemsHasEmptySlice(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrderWithItems(db, &models.Order{UserID: "u1", Total: "0"}, nil)
	if err != nil {
		t.Fatalf("CreateOrderWithItems: %v", err)
	}
	if len(created.Items) != 0 {
		t.Fatalf("expected no items, got %+v", created.Items)
	}
}

func TestGetOrdersScopedToUser(t *testing.T) {
	db := newTestDB(t)
	if _, err := CreateOrderWithItems(db, &models.Order{UserID: "u1", Total: "10.00"}, nil); err != nil {
		t.Fatalf("create order u1: %v", err)
	}
	if _, err := CreateOrderWithItems(db, &models.Order{UserID: "u2", Total: "20.00"}, nil); err != nil {
		t.Fatalf("create order u2: %v", err)
	}

	all, err := GetOrders(db, "")
	if err != nil {
		t.Fatalf("GetOrders all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all orders = %d, want 2", len(all))
	}

	scoped, err := GetOrders(db, "u1")
	if err != nil {
		t.Fatalf("GetOrders scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].UserID != "u1" {
		t.Fatalf("unexpected scoped orders: %+v", scoped)
	}
}

func TestUpdateOrderStatusAllowsAnyTransition(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrderWithItems(db, &models.Order{UserID: "u1", Total: "10.00"}, nil)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Walk through the whole set, including out of a terminal state.
	sequence := []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
		models.OrderStatusPending,
	}
	for _, status := range sequence {
		order, err := UpdateOrderStatus(db, created.ID, status)
		if err != nil {
			t.Fatalf("update to %s: %v", status, err)
		}
		if order.Status != status {
			t.Fatalf("status = %s, want %s", order.Status, status)
		}
	}

	if _, err := UpdateOrderStatus(db, "missing-id", models.OrderStatusShipped); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := SeedDemoData(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var first int64
	db.Model(&models.Product{}).Count(&first)
	if first == 0 {
		t.Fatal("seed created no products")
	}

	if err := SeedDemoData(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var second int64
	db.Model(&models.Product{}).Count(&second)
	if second != first {
		t.Fatalf("second seed changed product count: %d -> %d", first, second)
	}
}
