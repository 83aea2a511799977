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
	"github.com/metergate/metergate/internal/models"
)

// ListMeters returns every meter joined with its owning customer and
// utility type, so the listing carries human-readable names instead of
// foreign keys. Location stays nullable through to the response.
func (db *DB) ListMeters(ctx context.Context) ([]models.Meter, error) {
	query := `
	SELECT m.meter_id, m.customer_id, u.utility_name, m.status,
	       c.service_address, m.location
	FROM meters m
	JOIN customers c ON c.customer_id = m.customer_id
	JOIN utility_types u ON u.utility_id = m.utility_id
	ORDER BY m.meter_id`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("list_meters", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query meters: %w", err)
	}
	defer closeRows(rows, "meters")

	meters := []models.Meter{}
	for rows.Next() {
		var m models.Meter
		if err := rows.Scan(&m.MeterID, &m.CustomerID, &m.UtilityName, &m.Status,
			&m.ServiceAddress, &m.Location); err != nil {
			return nil, fmt.Errorf("failed to scan meter row: %w", err)
		}
		meters = append(meters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meter rows: %w", err)
	}

	return meters, nil
}

// InsertMeter registers a meter against an existing customer and utility
// type with a server-side install date. A nil location is stored as NULL.
// Foreign keys are not pre-checked; a dangling customer or utility ID
// fails on the constraint.
func (db *DB) InsertMeter(ctx context.Context, req *models.AddMeterRequest) error {
	query := `
	INSERT INTO meters (meter_id, customer_id, utility_id, status, location, install_date)
	VALUES ($1, $2, $3, $4, $5, NOW())`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query, req.MeterID, req.CustomerID, req.UtilityID,
		req.Status, req.Location)
	metrics.RecordDBQuery("insert_meter", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert meter: %w", err)
	}

	return nil
}
