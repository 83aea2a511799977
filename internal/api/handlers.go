// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

// Package api implements the HTTP surface of the gateway: request
// decoding, validation, the success/error response envelope, and the
// Chi route table. All persistence goes through the injected database
// layer; handlers own no state beyond their dependencies.
package api

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/metergate/metergate/internal/auth"
	"github.com/metergate/metergate/internal/config"
	"github.com/metergate/metergate/internal/database"
	"github.com/metergate/metergate/internal/models"
)

// Handler holds the dependencies shared by all endpoint handlers.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	jwt       *auth.JWTManager
	startTime time.Time

	// now and customerID are swappable for tests.
	now        func() time.Time
	customerID func() string
}

// NewHandler creates the handler set with its dependencies.
func NewHandler(db *database.DB, cfg *config.Config, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		db:         db,
		cfg:        cfg,
		jwt:        jwtManager,
		startTime:  time.Now(),
		now:        time.Now,
		customerID: generateCustomerID,
	}
}

// generateCustomerID builds a customer ID from a pseudo-random number in
// [100, 999]. Uniqueness is not checked here; a collision surfaces as a
// primary key violation on insert.
func generateCustomerID() string {
	return fmt.Sprintf("CUST-%d", rand.IntN(900)+100)
}

// Health reports gateway liveness and database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Database unavailable", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status": "ok",
			"uptime": time.Since(h.startTime).Round(time.Second).String(),
		},
	})
}
