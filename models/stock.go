package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
	// ErrZeroStock guards the default write path: only a flow that can
	// legitimately exhaust stock (checkout) may write zero explicitly.
	ErrZeroStock      = errors.New("stock quantity of zero requires explicit confirmation")
	ErrProductMissing = errors.New("product not found")
)

// CurrentStock returns the purchasable stock for a product. A product that
// does not exist, is not approved, or has been retired contributes zero.
func CurrentStock(db *gorm.DB, productID uint) int {
	var product Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return 0
	}
	if product.Approval != ApprovalApproved || product.State != StateActive {
		return 0
	}
	return product.Quantity
}

// SetStock writes a product's stock level. Negative values are always
// rejected; zero is rejected unless allowZero is set.
func SetStock(db *gorm.DB, productID uint, quantity int, allowZero bool) error {
	if quantity < 0 {
		return ErrNegativeStock
	}
	if quantity == 0 && !allowZero {
		return ErrZeroStock
	}

	result := db.Model(&Product{}).Where("id = ?", productID).Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductMissing
	}
	return nil
}
