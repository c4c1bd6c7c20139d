package handlers_test_suite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/kitchen-inventory/internal/http"
	handler "github.com/rogerio-castellano/kitchen-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
	"github.com/rogerio-castellano/kitchen-inventory/internal/repo"
	"github.com/rs/zerolog"
)

// newRouter returns a router over a fresh in-memory repository, so ids start at 1.
func newRouter() (http.Handler, *repo.InMemoryProductRepository) {
	productRepo := repo.NewInMemoryProductRepository()
	srv := handler.NewServer(productRepo, nil, zerolog.Nop())
	return api.NewRouter(srv, zerolog.Nop(), nil), productRepo
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func productPath(id int) string {
	return fmt.Sprintf("%s/%d", handler.ProductsPath, id)
}

// failingRepo simulates an unavailable store.
type failingRepo struct{}

var errStoreDown = errors.New("store unavailable")

func (failingRepo) EnsureSchema(context.Context) error { return errStoreDown }
func (failingRepo) GetAll(context.Context) ([]models.Product, error) {
	return nil, errStoreDown
}
func (failingRepo) GetByID(context.Context, int) (models.Product, error) {
	return models.Product{}, errStoreDown
}
func (failingRepo) Create(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, errStoreDown
}
func (failingRepo) Update(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, errStoreDown
}
func (failingRepo) Delete(context.Context, int) error { return errStoreDown }

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }
