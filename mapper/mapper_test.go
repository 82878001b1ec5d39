package mapper_test

import (
	"testing"

	"github.com/fruitstand/fruitstand-api/mapper"
	"github.com/stretchr/testify/assert"
)

func TestToCustomer(t *testing.T) {
	req := mapper.CustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@doe.com",
		Phone:     "1234567890",
		Address:   "123 Fake Street",
	}

	customer := mapper.ToCustomer(req)

	assert.Equal(t, uint(0), customer.ID)
	assert.Equal(t, "Jane", customer.FirstName)
	assert.Equal(t, "Doe", customer.LastName)
	assert.Equal(t, "jane@doe.com", customer.Email)
	assert.Equal(t, "1234567890", customer.Phone)
	assert.Equal(t, "123 Fake Street", customer.Address)
}

func TestToProduct(t *testing.T) {
	req := mapper.ProductRequest{
		Name:        "Apple",
		Description: "Juicy apple",
		Price:       0.50,
	}

	product := mapper.ToProduct(req)

	assert.Equal(t, uint(0), product.ID)
	assert.Equal(t, "Apple", product.Name)
	assert.Equal(t, "Juicy apple", product.Description)
	assert.Equal(t, 0.50, product.Price)
}

func TestToOrderSizesLineItemsFromRequest(t *testing.T) {
	req := mapper.OrderRequest{
		CustomerID: 1,
		LineItems: []mapper.LineItemRequest{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 5},
		},
	}

	order := mapper.ToOrder(req)

	assert.Len(t, order.LineItems, 2)
	assert.Equal(t, uint(1), order.LineItems[0].ProductID)
	assert.Equal(t, 3, order.LineItems[0].Quantity)
	assert.Equal(t, uint(2), order.LineItems[1].ProductID)
	assert.Equal(t, 5, order.LineItems[1].Quantity)
	// Customer resolution is the controller's job.
	assert.Nil(t, order.CustomerID)
}

func TestToOrderEmptyLineItems(t *testing.T) {
	order := mapper.ToOrder(mapper.OrderRequest{CustomerID: 1})
	assert.Empty(t, order.LineItems)
}
