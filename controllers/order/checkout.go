package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Checkout policy constants. These are business rules, not configuration.
var (
	taxRate      = decimal.NewFromFloat(0.05)
	flatShipping = decimal.NewFromInt(50)
)

// ErrEmptyCart means there was nothing to purchase: the user has no cart or
// the cart has no line items.
var ErrEmptyCart = errors.New("cart is empty")

// ErrCartRemovalFailed means the final cleanup found no cart to delete. The
// cart vanished mid-transaction, so the whole checkout is aborted rather than
// committing an order against a lost cart.
var ErrCartRemovalFailed = errors.New("cart removal failed: no cart to delete")

// InsufficientStockError names the first product whose requested quantity
// exceeds the available approved stock.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id %d): requested %d, available %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}

// InventoryUpdateError means a stock write did not apply, e.g. the product
// vanished between the validation pass and the decrement.
type InventoryUpdateError struct {
	ProductID uint
	Name      string
}

func (e *InventoryUpdateError) Error() string {
	return fmt.Sprintf("inventory update failed for product %q (id %d)", e.Name, e.ProductID)
}

// TransactionAbortedError wraps whatever caused a checkout to abort. No write
// of a failed checkout is observable afterwards.
type TransactionAbortedError struct {
	Err error
}

func (e *TransactionAbortedError) Error() string {
	return "checkout aborted: " + e.Err.Error()
}

func (e *TransactionAbortedError) Unwrap() error { return e.Err }

// CheckoutResult reports the committed order.
type CheckoutResult struct {
	Order     models.Order
	Total     float64
	ItemCount int
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// availableStock applies the stock rules to a loaded product row: only an
// active, approved listing contributes stock.
func availableStock(p *models.Product) int {
	if p.Approval != models.ApprovalApproved || p.State != models.StateActive {
		return 0
	}
	return p.Quantity
}

// PlaceUserOrder turns the user's cart into an order in one transaction:
// validate stock for every line item, price the order, decrement inventory,
// snapshot the products into the order, delete the cart. Any failure aborts
// the whole transaction; concurrent checkouts of the same product are
// serialized by the database's transaction isolation, not by this function.
func PlaceUserOrder(db *gorm.DB, userID string) (*CheckoutResult, error) {
	var result CheckoutResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// Validation pass: every line item must be satisfiable before any
		// stock is touched.
		products := make(map[uint]models.Product, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			err := tx.First(&product, "id = ?", item.ProductID).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			available := 0
			if err == nil {
				available = availableStock(&product)
			}
			if item.Quantity > available {
				return &InsufficientStockError{
					ProductID: item.ProductID,
					Name:      product.Name,
					Requested: item.Quantity,
					Available: available,
				}
			}
			products[item.ProductID] = product
		}

		// Mutation pass: decrement stock, accumulate the subtotal, and build
		// the order's product snapshots.
		subtotal := decimal.Zero
		itemCount := 0
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			product := products[item.ProductID]

			if err := models.SetStock(tx, product.ID, product.Quantity-item.Quantity, true); err != nil {
				return &InventoryUpdateError{ProductID: product.ID, Name: product.Name}
			}

			price := decimal.NewFromFloat(product.NewPrice)
			subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			itemCount += item.Quantity

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ArtisanID:   product.ArtisanID,
				Name:        product.Name,
				Description: product.Description,
				Material:    product.Material,
				Image:       product.Image,
				OldPrice:    product.OldPrice,
				NewPrice:    product.NewPrice,
				Quantity:    item.Quantity,
			})
		}

		tax := subtotal.Mul(taxRate).Round(2)
		total := subtotal.Add(tax).Add(flatShipping).Round(2)
		money, _ := total.Float64()

		order := models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			Money:         money,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusUnpaid,
			State:         models.StateActive,
			PurchasedAt:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Remove the cart wholesale. Zero rows deleted means the cart was
		// lost mid-transaction; commit nothing.
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		deleted := tx.Where("cart_id = ?", cart.CartID).Delete(&models.Cart{})
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			return ErrCartRemovalFailed
		}

		result = CheckoutResult{Order: order, Total: money, ItemCount: itemCount}
		return nil
	})
	if err != nil {
		return nil, &TransactionAbortedError{Err: err}
	}
	return &result, nil
}
