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

// ListCustomers returns every customer record, unfiltered and unpaginated.
func (db *DB) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	query := `
	SELECT customer_id, customer_name, customer_type, email, phone,
	       service_address, billing_address, registration_date
	FROM customers
	ORDER BY registration_date DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("list_customers", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer closeRows(rows, "customers")

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustomerID, &c.CustomerName, &c.CustomerType, &c.Email,
			&c.Phone, &c.ServiceAddress, &c.BillingAddress, &c.RegistrationDate); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return customers, nil
}

// InsertCustomer creates a customer record with a server-side registration
// timestamp. The customer ID is generated by the caller; uniqueness is
// enforced only by the primary key constraint.
func (db *DB) InsertCustomer(ctx context.Context, customerID string, req *models.AddCustomerRequest) error {
	query := `
	INSERT INTO customers (customer_id, customer_name, customer_type, email, phone,
	                       service_address, billing_address, registration_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query, customerID, req.CustomerName, req.CustomerType,
		req.Email, req.Phone, req.ServiceAddress, req.BillingAddress)
	metrics.RecordDBQuery("insert_customer", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}
