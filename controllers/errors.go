package controllers

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrCustomerNotFound = &CustomError{"Customer not found"}
	ErrProductNotFound  = &CustomError{"Product not found"}
	ErrNoLineItems      = &CustomError{"Order must contain at least one line item"}
)
