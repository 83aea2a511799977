// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package api

import (
	"net/http"

	"github.com/metergate/metergate/internal/logging"
	"github.com/metergate/metergate/internal/models"
)

// GetMeters returns every meter flattened with its customer's service
// address and the utility's display name.
func (h *Handler) GetMeters(w http.ResponseWriter, r *http.Request) {
	meters, err := h.db.ListMeters(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch meters", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    meters,
	})
}

// AddMeter registers a meter. Customer, meter ID, utility type and
// status are required; location is optional and stored as NULL when
// absent. Referential integrity is left to the database constraints.
func (h *Handler) AddMeter(w http.ResponseWriter, r *http.Request) {
	var req models.AddMeterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	if err := h.db.InsertMeter(r.Context(), &req); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to add meter", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("meter_id", req.MeterID).
		Str("customer_id", req.CustomerID).
		Msg("Meter added")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Message: "Meter added successfully",
	})
}
