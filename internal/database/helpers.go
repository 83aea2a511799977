// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package database

import (
	"database/sql"

	"github.com/metergate/metergate/internal/logging"
)

// closeRows closes a result set and logs close failures rather than
// propagating them, since the row iteration error has already been checked.
func closeRows(rows *sql.Rows, name string) {
	if err := rows.Close(); err != nil {
		logging.Error().Err(err).Str("query", name).Msg("Failed to close rows")
	}
}
