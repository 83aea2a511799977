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

// GetCustomers returns the full customer list, newest first.
func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.db.ListCustomers(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch customers", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    customers,
	})
}

// AddCustomer creates a customer under a gateway-generated ID and echoes
// the ID back so the frontend can show it. The body is stored as
// submitted, with no field presence checks; the registration date comes
// from the database clock.
func (h *Handler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.AddCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customerID := h.customerID()
	if err := h.db.InsertCustomer(r.Context(), customerID, &req); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to add customer", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("customer_id", customerID).
		Msg("Customer added")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success:    true,
		Message:    "Customer added successfully",
		CustomerID: customerID,
	})
}
