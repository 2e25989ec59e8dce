package storage

import (
	"time"

	"github.com/Mdken1/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetCartItems returns the user's cart with product views attached. Rows
// whose product has vanished from the catalog are dropped rather than
// surfaced as malformed records.
func GetCartItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&items).Error; err != nil {
		return nil, err
	}

	withProduct := items[:0]
	for _, item := range items {
		if item.Product != nil {
			withProduct = append(withProduct, item)
		}
	}
	return withProduct, nil
}

// AddToCart inserts a cart row or increments the existing one in a single
// statement, so concurrent additions for the same (user, product) pair
// accumulate instead of overwriting each other.
func AddToCart(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	if _, err := GetProduct(db, productID); err != nil {
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return getCartItem(db, userID, productID)
}

// UpdateCartItemQuantity replaces the stored quantity. Callers handle the
// quantity <= 0 case by removing the row instead.
func UpdateCartItemQuantity(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	result := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return getCartItem(db, userID, productID)
}

func RemoveFromCart(db *gorm.DB, userID, productID string) error {
	return db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func getCartItem(db *gorm.DB, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Preload("Product").
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
