package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are exchanged as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalogue entry. Stocks holds the batches received
// for the product through the product_stocks join table.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string          `json:"name" gorm:"uniqueIndex;type:varchar(255);not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"imageUrl" gorm:"type:varchar(1024)"`
	Stocks      []Stock         `json:"stocks" gorm:"many2many:product_stocks;"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
