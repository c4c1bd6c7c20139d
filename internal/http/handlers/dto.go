package handlers

import "time"

// ProductDTO is the wire shape used for both request bodies and responses.
type ProductDTO struct {
	Id             int        `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Quantity       int        `json:"quantity"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

type HealthResult struct {
	Status string `json:"status"`
}
