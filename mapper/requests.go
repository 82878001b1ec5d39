package mapper

// CustomerRequest is the payload for creating a customer.
type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// CustomerUpdateRequest carries the mutable contact fields of a customer.
// The id is never updated.
type CustomerUpdateRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// LineItemRequest references a product and a quantity inside an order.
type LineItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest is the payload for creating an order directly.
type OrderRequest struct {
	CustomerID uint              `json:"customer_id" binding:"required"`
	LineItems  []LineItemRequest `json:"line_items" binding:"required"`
}

// CheckoutItem is one requested item in a checkout.
type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CheckoutRequest is the payload for the checkout flow.
type CheckoutRequest struct {
	CustomerID uint           `json:"customer_id" binding:"required"`
	Items      []CheckoutItem `json:"items" binding:"required"`
}
