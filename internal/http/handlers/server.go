package handlers

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/kitchen-inventory/internal/repo"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server holds the collaborators shared by every handler. It carries no
// per-request state and is safe for concurrent use.
type Server struct {
	products repo.ProductRepository
	pinger   Pinger
	logger   zerolog.Logger
}

// NewServer wires handlers to a product repository. A nil pinger makes the
// health check always report ok.
func NewServer(products repo.ProductRepository, pinger Pinger, logger zerolog.Logger) *Server {
	return &Server{
		products: products,
		pinger:   pinger,
		logger:   logger,
	}
}

func (s *Server) log(r *http.Request) *zerolog.Logger {
	l := zerolog.Ctx(r.Context())
	if l.GetLevel() == zerolog.Disabled {
		return &s.logger
	}
	return l
}
