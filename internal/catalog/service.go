package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidProduct is returned when product fields fail validation.
var ErrInvalidProduct = errors.New("invalid product")

// Service provides high-level catalog operations on top of the Repository.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new catalog Service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new product, returning it with its assigned ID.
func (s *Service) Create(code, name string, price decimal.Decimal, quantity int) (*Product, error) {
	if err := validate(code, name, price, quantity); err != nil {
		return nil, err
	}

	product := &Product{
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	if err := s.repo.Create(product); err != nil {
		s.logger.Error("failed to save product", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.String("code", product.Code),
	)
	return product, nil
}

// List returns every product in the catalog.
func (s *Service) List() ([]*Product, error) {
	return s.repo.FindAll()
}

// Update replaces all four fields of the product with the given ID.
func (s *Service) Update(id uint, code, name string, price decimal.Decimal, quantity int) (*Product, error) {
	if err := validate(code, name, price, quantity); err != nil {
		return nil, err
	}

	product := &Product{
		ID:       id,
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.Uint("product_id", id))
	return product, nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

// validate rejects negative money/stock before anything hits the store.
func validate(code, name string, price decimal.Decimal, quantity int) error {
	if code == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidProduct)
	}
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidProduct)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidProduct)
	}
	return nil
}
