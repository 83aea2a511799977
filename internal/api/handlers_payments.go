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

// RecordPayment applies a payment to a bill through the stored procedure.
// The body is passed through without presence checks; the procedure is
// the arbiter and its failure comes back as a 500.
//
// The payment is attributed to the authenticated staff user when the
// request carries a valid bearer token. Without one it falls back to the
// configured counter cashier account.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req models.RecordPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cashierID := h.cfg.Security.DefaultCashierID
	claims, err := h.jwt.IdentityFromRequest(r)
	if err != nil {
		respondError(w, r, http.StatusUnauthorized, "Invalid session token", err)
		return
	}
	if claims != nil {
		cashierID = claims.UserID
	}

	if err := h.db.RecordPayment(r.Context(), req.BillID, req.PaymentAmount, req.PaymentMethod, cashierID); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to record payment", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("bill_id", req.BillID).
		Str("cashier_id", cashierID).
		Float64("amount", req.PaymentAmount).
		Msg("Payment recorded")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Message: "Payment recorded successfully",
	})
}
