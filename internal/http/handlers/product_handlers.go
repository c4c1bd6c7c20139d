package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/kitchen-inventory/internal/repo"
)

// ProductsPath is the prefix every product route is mounted under.
const ProductsPath = "/api/products"

// GetProductsHandler lists every product. Order is whatever the store returns.
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.log(r).Error().Err(err).Msg("could not fetch products")
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductDTO, len(products))
	for i, p := range products {
		response[i] = toDTO(p)
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		s.log(r).Error().Err(err).Msg("failed to encode response")
	}
}

// GetProductByIDHandler returns one product, or 404 with an empty body.
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.log(r).Error().Err(err).Int("product_id", id).Msg("could not fetch product")
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, toDTO(product)); err != nil {
		s.log(r).Error().Err(err).Msg("failed to encode response")
	}
}

// CreateProductHandler stores a new product and answers 201 with a Location
// header. The id in the body is ignored.
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := s.parseProduct(w, r)
	if !ok {
		return
	}

	created, err := s.products.Create(r.Context(), product)
	if err != nil {
		s.log(r).Error().Err(err).Msg("could not create product")
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("%s/%d", ProductsPath, created.ID))
	if err := writeJSON(w, http.StatusCreated, toDTO(created), headers); err != nil {
		s.log(r).Error().Err(err).Msg("failed to encode response")
	}
}

// UpdateProductHandler overwrites name, category, quantity and expiration
// date of an existing product.
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := s.parseProduct(w, r)
	if !ok {
		return
	}
	product.ID = id

	if _, err := s.products.Update(r.Context(), product); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.log(r).Error().Err(err).Int("product_id", id).Msg("could not update product")
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProductHandler removes a product, or answers 404 if it is absent.
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := s.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.log(r).Error().Err(err).Int("product_id", id).Msg("could not delete product")
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
