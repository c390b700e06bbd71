package catalog

import "github.com/shopspring/decimal"

func init() {
	// The API speaks JSON numbers for money, same as the legacy backend.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is one sellable item in the catalog. Code is the external
// barcode/SKU used for lookups; the schema does not enforce its uniqueness
// but in practice one code maps to one product.
type Product struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	Code     string          `json:"code" gorm:"size:64;index"`
	Name     string          `json:"name" gorm:"size:255;not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null;default:0"`
}

// TableName returns the table name for the Product model.
func (Product) TableName() string {
	return "products"
}
