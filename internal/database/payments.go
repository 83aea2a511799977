// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/metergate/metergate/internal/metrics"
)

// RecordPayment applies a payment to a bill through the record_payment
// stored procedure. The procedure owns all of the transactional work:
// inserting the payment row, updating the bill balance and flipping the
// bill status when it reaches zero. The gateway passes the inputs through
// without validating them; the procedure raises on bad input and the
// error surfaces to the caller.
func (db *DB) RecordPayment(ctx context.Context, billID string, amount float64, method, cashierID string) error {
	query := `CALL record_payment($1, $2, $3, $4)`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query, billID, amount, method, cashierID)
	metrics.RecordDBQuery("record_payment", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}
