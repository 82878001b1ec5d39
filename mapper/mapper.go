// Package mapper converts request payloads into persistence entities.
// Each request/entity pair gets its own typed conversion function, so a
// renamed field is a compile error instead of a silently skipped copy.
package mapper

import (
	"github.com/fruitstand/fruitstand-api/models"
)

// ToCustomer builds a new Customer entity from a create request.
func ToCustomer(req CustomerRequest) models.Customer {
	return models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
}

// ToProduct builds a new Product entity from a create request.
func ToProduct(req ProductRequest) models.Product {
	return models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

// ToOrder builds a new Order entity from an order request. The line-item
// slice is sized from the request itself, so the item count always matches
// what the caller sent. Customer and product references are left for the
// controller to resolve against the database.
func ToOrder(req OrderRequest) models.Order {
	lineItems := make([]models.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, models.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return models.Order{
		LineItems: lineItems,
	}
}
