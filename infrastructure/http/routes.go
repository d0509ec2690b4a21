package http

import (
	"github.com/go-chi/chi/v5"

	"tradein/frontend/sell/variant"
)

// RegisterSellRoutes registers the trade-in flow pages.
func (s *Server) RegisterSellRoutes() {
	s.router.Route("/{segment}/brand/{brandId}/device/{deviceId}/city/{cityId}", func(r chi.Router) {
		r.Get("/", variant.VariantPageQueryHandler(s.Variants))
		r.Get("/quote.pdf", variant.VariantQuotePDFHandler(s.Variants))
	})
}

// RegisterAPIRoutes registers JSON endpoints.
func (s *Server) RegisterAPIRoutes() {
	s.router.Get("/api/devices/{deviceId}/variants", variant.DeviceVariantsAPIHandler(s.Variants))
}
