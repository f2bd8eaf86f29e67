package services

const (
	EventUserRegistered = "user.registered"
	EventProductDeleted = "product.deleted"
	EventStockAdded     = "stock.added"
	EventStockRemoved   = "stock.removed"
)

// UserEvent is the payload of user events.
type UserEvent struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ProductEvent is the payload of product events.
type ProductEvent struct {
	ProductID string `json:"productId"`
}

// StockEvent is the payload of stock events.
type StockEvent struct {
	ProductID string `json:"productId"`
	StockID   string `json:"stockId"`
	BatchID   string `json:"batchId"`
	Quantity  int    `json:"quantity"`
}
