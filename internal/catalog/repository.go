package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a product with the given ID does not exist.
var ErrNotFound = errors.New("product not found")

// Repository provides access to product storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new product and fills in its assigned ID.
func (r *Repository) Create(product *Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID.
// Returns ErrNotFound if the product does not exist.
func (r *Repository) FindByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// FindAll retrieves every product in the catalog.
func (r *Repository) FindAll() ([]*Product, error) {
	var products []*Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Update replaces all four editable fields of an existing product.
// Returns ErrNotFound if the product does not exist.
func (r *Repository) Update(product *Product) error {
	result := r.db.Model(&Product{}).Where("id = ?", product.ID).
		Select("code", "name", "price", "quantity").
		Updates(map[string]any{
			"code":     product.Code,
			"name":     product.Name,
			"price":    product.Price,
			"quantity": product.Quantity,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product row for good; there is no soft delete.
// Returns ErrNotFound if the product does not exist.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&Product{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
