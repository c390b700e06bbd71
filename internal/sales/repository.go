package sales

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"api_pos/internal/catalog"
	"api_pos/internal/users"
)

// Repository persists sales and coordinates the stock-decrement transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create turns a proposed sale into a durable, all-or-nothing state change
// across the sale header, its items and each product's quantity. Every line
// is validated against current stock inside the transaction before anything
// is written, so a sale either fully fails validation or fully proceeds.
// Any failure rolls the whole transaction back.
func (r *Repository) Create(input CreateInput) (*Sale, error) {
	var created Sale

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var seller users.User
		if err := tx.First(&seller, input.SellerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", ErrSellerNotFound, input.SellerID)
			}
			return fmt.Errorf("failed to read seller: %w", err)
		}

		// Stock check for every line before any write. The quantities are
		// re-read inside the transaction, never taken from the client.
		for _, item := range input.Items {
			product, err := r.readStock(tx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Quantity < item.Quantity {
				return &StockError{
					ProductID: product.ID,
					Requested: item.Quantity,
					Available: product.Quantity,
				}
			}
		}

		sale := Sale{
			Date:     time.Now(),
			Total:    input.Total,
			SellerID: input.SellerID,
		}
		if err := tx.Omit(clause.Associations).Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		for _, item := range input.Items {
			line := SaleItem{
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := tx.Omit(clause.Associations).Create(&line).Error; err != nil {
				return fmt.Errorf("failed to insert sale item: %w", err)
			}

			// Guarded decrement. The WHERE condition re-checks stock at
			// write time, so a concurrent sale that slipped past the read
			// above still cannot drive quantity negative.
			result := tx.Model(&catalog.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				stockErr := &StockError{ProductID: item.ProductID, Requested: item.Quantity}
				if product, err := r.readStock(tx, item.ProductID); err == nil {
					stockErr.Available = product.Quantity
				}
				return stockErr
			}
		}

		if err := tx.Preload("Seller").Preload("Items.Product").First(&created, sale.ID).Error; err != nil {
			return fmt.Errorf("failed to load created sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// readStock reads a product's current row inside the transaction. On MySQL
// the row is locked so concurrent decrements of the same product serialize;
// SQLite has no FOR UPDATE but its single writer plus the guarded decrement
// in Create keep the check safe there too.
func (r *Repository) readStock(tx *gorm.DB, productID uint) (*catalog.Product, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var product catalog.Product
	if err := q.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to read stock: %w", err)
	}
	return &product, nil
}

// FindAll returns every sale, newest first, joined with its seller and its
// items. Items carry the product's current descriptive fields; only the
// unit price is pinned to sale time.
func (r *Repository) FindAll() ([]*Sale, error) {
	var result []*Sale
	err := r.db.
		Preload("Seller").
		Preload("Items.Product").
		Order("date DESC, id DESC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return result, nil
}
