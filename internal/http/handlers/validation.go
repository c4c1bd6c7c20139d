package handlers

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Only presence of the name is checked. Empty category and any quantity,
// negative included, are accepted.
func validateProduct(p ProductDTO) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

// parseProduct decodes and validates a product body. On failure the response
// has already been written and ok is false.
func (s *Server) parseProduct(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	var req ProductDTO
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return models.Product{}, false
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusBadRequest, validationErrors); err != nil {
			s.log(r).Error().Err(err).Msg("failed to encode response")
		}
		return models.Product{}, false
	}

	return toModel(req), true
}

func toModel(dto ProductDTO) models.Product {
	p := models.Product{
		Name:     dto.Name,
		Category: dto.Category,
		Quantity: dto.Quantity,
	}
	if dto.ExpirationDate != nil {
		t := dto.ExpirationDate.UTC()
		p.ExpirationDate = &t
	}
	return p
}

func toDTO(p models.Product) ProductDTO {
	return ProductDTO{
		Id:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Quantity:       p.Quantity,
		ExpirationDate: p.ExpirationDate,
	}
}
