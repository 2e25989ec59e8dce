package storage

import (
	"github.com/Mdken1/storefront-api/models"
	"gorm.io/gorm"
)

// GetOrders lists orders newest first, optionally scoped to one user. Each
// order carries its line items with product snapshots; an order with no items
// comes back with an empty slice, never a phantom item.
func GetOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	query := db.Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}
	return orders, nil
}

func GetOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

// CreateOrderWithItems writes the order and all of its line items inside one
// transaction; a failure on any item rolls the order back, so an item-less
// order can never be left behind.
func CreateOrderWithItems(db *gorm.DB, order *models.Order, items []models.OrderItem) (*models.Order, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetOrder(db, order.ID)
}

// UpdateOrderStatus applies a status patch. The status must belong to the
// closed set, but any-to-any transitions are accepted, including out of
// terminal states.
func UpdateOrderStatus(db *gorm.DB, id string, status models.OrderStatus) (*models.Order, error) {
	result := db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetOrder(db, id)
}
