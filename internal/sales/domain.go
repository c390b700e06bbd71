package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"api_pos/internal/catalog"
	"api_pos/internal/users"
)

// Sale is one completed transaction in the ledger. It is created exactly
// once, together with its items, and never mutated afterwards.
type Sale struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	Date     time.Time       `json:"date" gorm:"not null;index"`
	Total    decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	SellerID uint            `json:"-" gorm:"not null;index"`
	Seller   users.User      `json:"seller" gorm:"foreignKey:SellerID"`
	Items    []SaleItem      `json:"items" gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for the Sale model.
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one product line within a sale. UnitPrice is captured at sale
// time so historical sales keep their price even if the catalog changes;
// the joined Product carries whatever the catalog says today.
type SaleItem struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	SaleID    uint            `json:"-" gorm:"not null;index"`
	ProductID uint            `json:"-" gorm:"not null;index"`
	Product   catalog.Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for the SaleItem model.
func (SaleItem) TableName() string {
	return "sale_items"
}

// ItemInput is one requested line of a proposed sale.
type ItemInput struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateInput is a proposed sale as submitted by the client.
type CreateInput struct {
	Items    []ItemInput     `json:"items"`
	Total    decimal.Decimal `json:"total"`
	SellerID uint            `json:"seller_id"`
}
