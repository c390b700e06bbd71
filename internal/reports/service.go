package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_pos/internal/sales"
)

// SaleSource yields the sales a report is built from.
type SaleSource interface {
	List() ([]*sales.Sale, error)
}

// Report is a date-filtered view of the ledger plus its totals.
type Report struct {
	From         time.Time       `json:"from,omitzero"`
	To           time.Time       `json:"to,omitzero"`
	Sales        []*sales.Sale   `json:"sales"`
	SaleCount    int             `json:"sale_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalUnits   int             `json:"total_units"`
}

// Service builds sales reports.
type Service struct {
	source SaleSource
	logger *zap.Logger
}

// NewService creates a new report Service.
func NewService(source SaleSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		source: source,
		logger: logger,
	}
}

// Build filters the ledger to the inclusive [from, to] range and computes
// the totals. A zero from or to leaves that end of the range open.
func (s *Service) Build(from, to time.Time) (*Report, error) {
	all, err := s.source.List()
	if err != nil {
		return nil, err
	}

	report := &Report{
		From:         from,
		To:           to,
		Sales:        make([]*sales.Sale, 0, len(all)),
		TotalRevenue: decimal.Zero,
	}

	for _, sale := range all {
		if !from.IsZero() && sale.Date.Before(from) {
			continue
		}
		if !to.IsZero() && sale.Date.After(to) {
			continue
		}

		report.Sales = append(report.Sales, sale)
		report.SaleCount++
		report.TotalRevenue = report.TotalRevenue.Add(sale.Total)
		for _, item := range sale.Items {
			report.TotalUnits += item.Quantity
		}
	}

	s.logger.Info("report built",
		zap.Int("sales", report.SaleCount),
		zap.String("total_revenue", report.TotalRevenue.String()),
	)
	return report, nil
}
