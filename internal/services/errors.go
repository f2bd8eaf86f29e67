package services

import "github.com/pkg/errors"

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrStockNotInProduct  = errors.New("Stock does not belong to this product")
	ErrEmailExists        = errors.New("Email already exists!")
	ErrProductExists      = errors.New("Product already exists!")
	ErrInvalidCredentials = errors.New("incorrect login details")
	ErrWrongPassword      = errors.New("Wrong Password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidQuantity    = errors.New("Stock quantity must be at least 1")
)
