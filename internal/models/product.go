package models

import "time"

// Product represents a kitchen stock item as stored in the Products table.
type Product struct {
	ID             int
	Name           string
	Category       string
	Quantity       int
	ExpirationDate *time.Time
}
