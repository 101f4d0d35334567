package sale

// ItemInput is one line of a sale request. Name and UnitPrice are taken
// as sent and frozen into the item snapshot.
type ItemInput struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateInput is a sale creation request. Total is recorded as sent; the
// engine deliberately does not recompute it from the items.
type CreateInput struct {
	CustomerID    uint        `json:"customer_id"`
	Items         []ItemInput `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
}
