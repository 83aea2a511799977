// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/metergate/metergate/internal/metrics"
	"github.com/metergate/metergate/internal/models"
)

// ErrInvalidCredentials is returned when no staff user matches the
// submitted username, password and role exactly.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// AuthenticateStaff looks up a staff user by the exact combination of
// username, password and role. All three must match a single row; a
// user who supplies the wrong role for an otherwise valid account is
// rejected the same way as a wrong password.
//
// Returns ErrInvalidCredentials when no row matches, so callers can
// distinguish a failed login from an infrastructure error.
func (db *DB) AuthenticateStaff(ctx context.Context, username, password, role string) (*models.StaffUser, error) {
	query := `
	SELECT user_id, full_name, role
	FROM staff_users
	WHERE username = $1 AND password_hash = $2 AND role = $3`

	start := time.Now()
	var user models.StaffUser
	err := db.conn.QueryRowContext(ctx, query, username, password, role).
		Scan(&user.UserID, &user.FullName, &user.Role)

	if err == sql.ErrNoRows {
		// A failed login is a normal outcome, not a query error.
		metrics.RecordDBQuery("login", time.Since(start), nil)
		return nil, ErrInvalidCredentials
	}
	metrics.RecordDBQuery("login", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff user: %w", err)
	}

	return &user, nil
}
