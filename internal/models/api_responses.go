// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package models

// APIResponse is the uniform envelope returned by every endpoint.
//
// Success responses populate the fields relevant to the endpoint:
//
//	{"success": true, "data": [...]}
//	{"success": true, "data": [...], "total": 1523.50}
//	{"success": true, "message": "Customer added.", "customerId": "CUST-482"}
//	{"success": true, "user": {"UserID": "U-001", ...}, "token": "..."}
//
// Error responses carry only success=false and a human-readable message:
//
//	{"success": false, "message": "Missing report type, start date, or end date."}
//
// Data uses a non-pointer interface with omitempty so endpoints that return
// rows always serialize an array (handlers substitute empty slices for nil),
// while endpoints without row data omit the field entirely.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Total      *float64    `json:"total,omitempty"`
	User       *StaffUser  `json:"user,omitempty"`
	Token      string      `json:"token,omitempty"`
	CustomerID string      `json:"customerId,omitempty"`
}

// ReportResponse is the envelope for the parameterized report dispatcher.
// Unlike APIResponse it always serializes data and total, because the
// dispatcher's contract includes both fields even when empty or zero.
type ReportResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   float64     `json:"total"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// AddCustomerRequest is the POST /addCustomer body. Field names use the
// frontend's hyphenated form-input naming. The endpoint accepts the field
// set as-is without presence checks; the database is the arbiter.
type AddCustomerRequest struct {
	CustomerName   string `json:"customer-name"`
	CustomerType   string `json:"customer-type"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ServiceAddress string `json:"service-address"`
	BillingAddress string `json:"billing-address"`
}

// AddMeterRequest is the POST /addMeter body. Location is optional and
// stored as NULL when absent.
type AddMeterRequest struct {
	CustomerID string  `json:"customer-id" validate:"required"`
	MeterID    string  `json:"meter-id" validate:"required"`
	UtilityID  string  `json:"utility-type" validate:"required"`
	Status     string  `json:"status" validate:"required"`
	Location   *string `json:"location"`
}

// RecordPaymentRequest is the POST /recordPayment body. Like /addCustomer,
// the endpoint performs no presence checks; the stored procedure rejects
// invalid input.
type RecordPaymentRequest struct {
	BillID        string  `json:"bill-id"`
	PaymentAmount float64 `json:"payment-amount"`
	PaymentMethod string  `json:"payment-method"`
}

// ReportQuery is the GET /api/reports query string. Start and End must be
// YYYY-MM-DD dates; Type is deliberately unconstrained here because an
// unrecognized type falls through to an empty success response.
type ReportQuery struct {
	Type  string `validate:"required"`
	Start string `validate:"required,reportdate"`
	End   string `validate:"required,reportdate"`
}
