// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package api

import (
	"errors"
	"net/http"

	"github.com/metergate/metergate/internal/database"
	"github.com/metergate/metergate/internal/logging"
	"github.com/metergate/metergate/internal/models"
)

// Login authenticates a staff user against the exact combination of
// username, password and role. Any mismatch, including the right
// password under the wrong role, is a 401; only an unreachable database
// or failed query is a 500.
//
// On success the response carries the matched user and a signed session
// token. Clients that predate token auth can ignore the token field.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	user, err := h.db.AuthenticateStaff(r.Context(), req.Username, req.Password, req.Role)
	if errors.Is(err, database.ErrInvalidCredentials) {
		respondError(w, r, http.StatusUnauthorized, "Invalid username, password, or role", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Server error during login", err)
		return
	}

	token, err := h.jwt.GenerateToken(user.UserID, user.FullName, user.Role)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Server error during login", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", user.UserID).
		Str("role", user.Role).
		Msg("Staff login")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		User:    user,
		Token:   token,
	})
}
