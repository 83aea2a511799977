// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

// Package models defines the domain entities and API response types shared
// between the database and api packages.
//
// All entities are rows in the external PostgreSQL database; the gateway owns
// no persistent state of its own. JSON field names follow the frontend
// contract (PascalCase column aliases), matching what the SQL queries select.
package models

import "time"

// StaffUser is a row of staff_users returned by the login query.
// PasswordHash is never serialized.
type StaffUser struct {
	UserID   string `json:"UserID"`
	FullName string `json:"FullName"`
	Role     string `json:"Role"`
}

// Customer is a row of the customers table.
type Customer struct {
	CustomerID       string    `json:"CustomerID"`
	CustomerName     string    `json:"CustomerName"`
	CustomerType     string    `json:"CustomerType"`
	Email            string    `json:"Email"`
	Phone            string    `json:"Phone"`
	ServiceAddress   string    `json:"ServiceAddress"`
	BillingAddress   string    `json:"BillingAddress"`
	RegistrationDate time.Time `json:"RegistrationDate"`
}

// Meter is the flattened row returned by the meter listing join:
// meters joined with customers and utility_types.
type Meter struct {
	MeterID        string  `json:"MeterID"`
	CustomerID     string  `json:"CustomerID"`
	UtilityName    string  `json:"UtilityName"`
	Status         string  `json:"Status"`
	ServiceAddress string  `json:"ServiceAddress"`
	Location       *string `json:"Location"`
}

// UtilityType is a row of the utility_types reference table.
type UtilityType struct {
	UtilityID   string `json:"UtilityID"`
	UtilityName string `json:"UtilityName"`
	Unit        string `json:"Unit"`
}

// Defaulter is one customer group in the defaulters report: a customer with
// at least one unpaid or overdue bill, with the count and summed amount due.
type Defaulter struct {
	CustomerID   string  `json:"CustomerID"`
	CustomerName string  `json:"CustomerName"`
	Phone        string  `json:"Phone"`
	CustomerType string  `json:"CustomerType"`
	UnpaidBills  int     `json:"UnpaidBills"`
	TotalDue     float64 `json:"TotalDue"`
}

// RevenueRow is one day/utility group in the revenue collections report.
type RevenueRow struct {
	Date             string  `json:"Date"`
	Utility          string  `json:"Utility"`
	PaymentsReceived int     `json:"PaymentsReceived"`
	Total            float64 `json:"Total"`
}

// UsageRow is one ranked customer/utility group in the consumption report.
// Rank uses competition ranking: equal totals share a rank and the next
// distinct total resumes at the preceding row count plus one. Consumption is
// pre-formatted as "1,234 kWh" style by the query.
type UsageRow struct {
	Rank         int    `json:"Rank"`
	CustomerID   string `json:"CustomerID"`
	CustomerName string `json:"CustomerName"`
	Utility      string `json:"Utility"`
	Consumption  string `json:"Consumption"`
}

// RevenueTrendRow is one month of the pivoted revenue trend report. Each
// known utility gets its own column, 0 when the month has no payments for
// it; TotalRevenue is the sum of the three.
type RevenueTrendRow struct {
	Month        string  `json:"Month"`
	Electricity  float64 `json:"Electricity"`
	Water        float64 `json:"Water"`
	Gas          float64 `json:"Gas"`
	TotalRevenue float64 `json:"TotalRevenue"`
}
