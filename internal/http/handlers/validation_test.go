package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/kitchen-inventory/internal/repo"
	"github.com/rs/zerolog"
)

func newTestServer() *Server {
	return NewServer(repo.NewInMemoryProductRepository(), nil, zerolog.Nop())
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestParseProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		expectOK   bool
		expectCode int
	}{
		{name: "full body", body: `{"name":"Milk","category":"Dairy","quantity":2,"expirationDate":"2024-06-01T00:00:00Z"}`, expectOK: true},
		{name: "null expiration", body: `{"name":"Milk","expirationDate":null}`, expectOK: true},
		{name: "negative quantity accepted", body: `{"name":"Milk","quantity":-4}`, expectOK: true},
		{name: "missing name", body: `{"category":"Dairy"}`, expectCode: http.StatusBadRequest},
		{name: "blank name", body: `{"name":"   "}`, expectCode: http.StatusBadRequest},
		{name: "malformed json", body: `{"name": "Milk"`, expectCode: http.StatusBadRequest},
		{name: "wrong type", body: `{"name":"Milk","quantity":"two"}`, expectCode: http.StatusBadRequest},
		{name: "bad date", body: `{"name":"Milk","expirationDate":"June 1st"}`, expectCode: http.StatusBadRequest},
		{name: "two values", body: `{"name":"Milk"}{"name":"Eggs"}`, expectCode: http.StatusBadRequest},
		{name: "empty body", body: ``, expectCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, ProductsPath, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			_, ok := newTestServer().parseProduct(w, req)
			if ok != tt.expectOK {
				t.Fatalf("expected ok=%v, got %v (body %q)", tt.expectOK, ok, w.Body.String())
			}
			if !ok && w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestParseProduct_ValidationErrorBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, ProductsPath, strings.NewReader(`{"name":""}`))
	w := httptest.NewRecorder()

	if _, ok := newTestServer().parseProduct(w, req); ok {
		t.Fatal("expected validation failure")
	}

	var errs []ProductValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(errs) != 1 || errs[0].Field != "Name" {
		t.Errorf("unexpected validation errors: %+v", errs)
	}
}

func TestParseProduct_NormalizesExpirationToUTC(t *testing.T) {
	body := `{"id":99,"name":"Milk","expirationDate":"2024-06-01T02:00:00+02:00"}`
	req := httptest.NewRequest(http.MethodPost, ProductsPath, strings.NewReader(body))
	w := httptest.NewRecorder()

	p, ok := newTestServer().parseProduct(w, req)
	if !ok {
		t.Fatalf("unexpected failure: %s", w.Body.String())
	}
	if p.ID != 0 {
		t.Errorf("expected body id to be ignored, got %d", p.ID)
	}
	if p.ExpirationDate == nil || p.ExpirationDate.Location() != time.UTC {
		t.Fatalf("expected UTC expiration, got %v", p.ExpirationDate)
	}
	if !p.ExpirationDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected expiration %v", p.ExpirationDate)
	}
}

func TestProductDTO_RoundTrip(t *testing.T) {
	exp := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []ProductDTO{
		{Id: 1, Name: "Milk", Category: "Dairy", Quantity: 2, ExpirationDate: &exp},
		{Id: 2, Name: "Rice", Quantity: -1},
	} {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var out ProductDTO
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if out.Id != in.Id || out.Name != in.Name || out.Category != in.Category || out.Quantity != in.Quantity {
			t.Errorf("expected %+v, got %+v", in, out)
		}
		if (in.ExpirationDate == nil) != (out.ExpirationDate == nil) {
			t.Fatalf("expiration presence changed: %v -> %v", in.ExpirationDate, out.ExpirationDate)
		}
		if in.ExpirationDate != nil && !in.ExpirationDate.Equal(*out.ExpirationDate) {
			t.Errorf("expected expiration %v, got %v", in.ExpirationDate, out.ExpirationDate)
		}
	}
}

func TestProductDTO_FieldNames(t *testing.T) {
	data, _ := json.Marshal(ProductDTO{Id: 1, Name: "Milk"})
	expected := `{"id":1,"name":"Milk","category":"","quantity":0,"expirationDate":null}`
	if string(data) != expected {
		t.Errorf("expected %s, got %s", expected, data)
	}
}

func TestParseProduct_LogsValidationWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	srv := NewServer(repo.NewInMemoryProductRepository(), nil, zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodPost, ProductsPath, strings.NewReader(`{"name":""}`))
	w := brokenWriter{httptest.NewRecorder()}

	if _, ok := srv.parseProduct(w, req); ok {
		t.Fatal("expected validation failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Errorf("expected write failure to be logged, got %q", buf.String())
	}
}

func TestProductID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "2147483647", want: 2147483647},
		{raw: "-5", want: -5},
		{raw: "2147483648", wantErr: true},
		{raw: "99999999999", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.raw)
			req := httptest.NewRequest(http.MethodGet, ProductsPath, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			got, err := productID(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
