package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_pos/internal/catalog"
	"api_pos/internal/sales"
	"api_pos/internal/users"
)

// fixedSource feeds the report builder a canned ledger.
type fixedSource struct {
	sales []*sales.Sale
}

func (f *fixedSource) List() ([]*sales.Sale, error) {
	return f.sales, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testSale(id uint, date string, total float64, quantities ...int) *sales.Sale {
	sale := &sales.Sale{
		ID:     id,
		Date:   day(date),
		Total:  decimal.NewFromFloat(total),
		Seller: users.User{ID: 1, Name: "maria", Role: users.RoleSeller},
	}
	for i, q := range quantities {
		sale.Items = append(sale.Items, sales.SaleItem{
			Product:   catalog.Product{ID: uint(i + 1), Code: "A1", Name: "Widget", Price: decimal.NewFromFloat(9.99)},
			Quantity:  q,
			UnitPrice: decimal.NewFromFloat(9.99),
		})
	}
	return sale
}

func TestBuild_Totals(t *testing.T) {
	source := &fixedSource{sales: []*sales.Sale{
		testSale(3, "2026-08-03", 19.98, 2),
		testSale(2, "2026-08-02", 9.99, 1),
		testSale(1, "2026-08-01", 29.97, 1, 2),
	}}
	svc := NewService(source, zaptest.NewLogger(t))

	report, err := svc.Build(time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.SaleCount)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromFloat(59.94)), "got %s", report.TotalRevenue)
	assert.Equal(t, 6, report.TotalUnits)
	assert.Len(t, report.Sales, 3)
}

func TestBuild_DateRangeIsInclusive(t *testing.T) {
	source := &fixedSource{sales: []*sales.Sale{
		testSale(3, "2026-08-03", 19.98, 2),
		testSale(2, "2026-08-02", 9.99, 1),
		testSale(1, "2026-08-01", 29.97, 3),
	}}
	svc := NewService(source, zaptest.NewLogger(t))

	report, err := svc.Build(day("2026-08-02"), day("2026-08-03"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.SaleCount)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromFloat(29.97)))
	assert.Equal(t, 3, report.TotalUnits)
}

func TestBuild_OpenEndedRange(t *testing.T) {
	source := &fixedSource{sales: []*sales.Sale{
		testSale(2, "2026-08-02", 9.99, 1),
		testSale(1, "2026-08-01", 29.97, 3),
	}}
	svc := NewService(source, zaptest.NewLogger(t))

	report, err := svc.Build(day("2026-08-02"), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.SaleCount)

	report, err = svc.Build(time.Time{}, day("2026-08-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, report.SaleCount)
}

func TestBuild_EmptyLedger(t *testing.T) {
	svc := NewService(&fixedSource{}, zaptest.NewLogger(t))

	report, err := svc.Build(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, report.SaleCount)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.NotNil(t, report.Sales, "JSON consumers expect an array, not null")
}

func TestRenderPDF(t *testing.T) {
	source := &fixedSource{sales: []*sales.Sale{
		testSale(2, "2026-08-02", 9.99, 1),
		testSale(1, "2026-08-01", 29.97, 3),
	}}
	svc := NewService(source, zaptest.NewLogger(t))

	report, err := svc.Build(time.Time{}, time.Time{})
	require.NoError(t, err)

	pdf, err := RenderPDF(report)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]), "output must be a PDF document")
}
