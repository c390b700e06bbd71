package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the storage seam the Service talks to.
type Ledger interface {
	Create(input CreateInput) (*Sale, error)
	FindAll() ([]*Sale, error)
}

// Service validates proposed sales and hands them to the Ledger.
type Service struct {
	ledger Ledger
	logger *zap.Logger
}

// NewService creates a new sales Service.
func NewService(ledger Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// Create records a sale. Input validation happens here, before any
// transaction is opened; stock validation happens inside the transaction.
func (s *Service) Create(input CreateInput) (*Sale, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyItems
	}

	// La venta tiene que cuadrar antes de tocar la base.
	lineSum := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w (product %d)", ErrInvalidQuantity, item.ProductID)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w (product %d)", ErrInvalidUnitPrice, item.ProductID)
		}
		lineSum = lineSum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !lineSum.Equal(input.Total) {
		return nil, fmt.Errorf("%w: submitted %s, computed %s", ErrTotalMismatch, input.Total, lineSum)
	}

	sale, err := s.ledger.Create(input)
	if err != nil {
		s.logger.Error("failed to record sale",
			zap.Uint("seller_id", input.SellerID),
			zap.Int("items", len(input.Items)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.Uint("seller_id", sale.SellerID),
		zap.Int("items", len(sale.Items)),
		zap.String("total", sale.Total.String()),
	)
	return sale, nil
}

// List returns every sale, newest first.
func (s *Service) List() ([]*Sale, error) {
	return s.ledger.FindAll()
}
