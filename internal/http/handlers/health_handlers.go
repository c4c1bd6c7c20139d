package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler reports whether the store answers a ping.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.pinger.PingContext(ctx); err != nil {
			s.log(r).Warn().Err(err).Msg("health check failed")
			if err := writeJSON(w, http.StatusServiceUnavailable, HealthResult{Status: "unavailable"}); err != nil {
				s.log(r).Error().Err(err).Msg("failed to encode response")
			}
			return
		}
	}
	if err := writeJSON(w, http.StatusOK, HealthResult{Status: "ok"}); err != nil {
		s.log(r).Error().Err(err).Msg("failed to encode response")
	}
}
