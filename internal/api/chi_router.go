// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metergate/metergate/internal/middleware"
)

// Router wires the handler set to the Chi route table.
type Router struct {
	handler *Handler
	chimw   *ChiMiddleware
}

// NewRouter creates a router around the handlers and middleware factory.
func NewRouter(handler *Handler, chimw *ChiMiddleware) *Router {
	return &Router{
		handler: handler,
		chimw:   chimw,
	}
}

// Setup builds the full route table. The paths mirror the frontend's
// fetch calls exactly, including the mixed bare and /api prefixes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)       // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)       // Real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)    // Recover from handler panics
	r.Use(router.chimw.CORS())        // Global so OPTIONS preflight works everywhere
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chimw.RateLimit())

	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Session and master data endpoints.
	r.Post("/login", router.handler.Login)
	r.Get("/getCustomers", router.handler.GetCustomers)
	r.Post("/addCustomer", router.handler.AddCustomer)
	r.Get("/getMeters", router.handler.GetMeters)
	r.Post("/addMeter", router.handler.AddMeter)
	r.Post("/recordPayment", router.handler.RecordPayment)

	// Dashboard and reporting endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Get("/defaulters", router.handler.Defaulters)
		r.Get("/consumption-data", router.handler.ConsumptionData)
		r.Get("/revenue-trends", router.handler.RevenueTrends)
		r.Get("/reports", router.handler.Reports)
	})

	return r
}
