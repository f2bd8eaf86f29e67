package models

import "time"

// Stock is a single batch of units added to a product.
type Stock struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BatchID   string    `json:"batchId" gorm:"type:varchar(16);index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
