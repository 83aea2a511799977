// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAppendRangeClause(t *testing.T) {
	tests := []struct {
		name       string
		rng        *ReportRange
		wantClause string
		wantArgs   int
	}{
		{
			name:       "nil range adds nothing",
			rng:        nil,
			wantClause: "",
			wantArgs:   0,
		},
		{
			name:       "range binds two placeholders",
			rng:        &ReportRange{Start: "2026-01-01", End: "2026-01-31"},
			wantClause: " AND p.payment_date::date BETWEEN $1 AND $2",
			wantArgs:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := appendRangeClause("p.payment_date", tt.rng, nil)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestAppendRangeClauseOffset(t *testing.T) {
	rng := &ReportRange{Start: "2026-01-01", End: "2026-01-31"}
	clause, args := appendRangeClause("b.bill_date", rng, []interface{}{"Unpaid"})
	want := " AND b.bill_date::date BETWEEN $2 AND $3"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if len(args) != 3 {
		t.Errorf("len(args) = %d, want 3", len(args))
	}
}

func TestRevenueReport(t *testing.T) {
	db, mock := newMockDB(t)

	rng := &ReportRange{Start: "2026-02-01", End: "2026-02-28"}

	rows := sqlmock.NewRows([]string{"date", "utility_name", "payments_received", "total"}).
		AddRow("2026-02-03", "Electricity", 4, 5200.0).
		AddRow("2026-02-03", "Water", 2, 800.0)
	mock.ExpectQuery("SELECT to_char\\(p.payment_date, 'YYYY-MM-DD'\\)").
		WithArgs("2026-02-01", "2026-02-28").
		WillReturnRows(rows)

	// The grand total query binds the same range independently.
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(p.payment_amount\\), 0\\)").
		WithArgs("2026-02-01", "2026-02-28").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(6000.0))

	results, total, err := db.RevenueReport(context.Background(), rng)
	if err != nil {
		t.Fatalf("RevenueReport() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("RevenueReport() returned %d rows, want 2", len(results))
	}
	if results[0].Utility != "Electricity" || results[0].PaymentsReceived != 4 {
		t.Errorf("first row = %+v, want Electricity with 4 payments", results[0])
	}
	if total != 6000.0 {
		t.Errorf("grand total = %v, want 6000", total)
	}
}

func TestRevenueReportEmptyWindow(t *testing.T) {
	db, mock := newMockDB(t)

	rng := &ReportRange{Start: "2030-01-01", End: "2030-01-31"}

	mock.ExpectQuery("SELECT to_char\\(p.payment_date, 'YYYY-MM-DD'\\)").
		WithArgs("2030-01-01", "2030-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"date", "utility_name", "payments_received", "total"}))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(p.payment_amount\\), 0\\)").
		WithArgs("2030-01-01", "2030-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	results, total, err := db.RevenueReport(context.Background(), rng)
	if err != nil {
		t.Fatalf("RevenueReport() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("RevenueReport() returned %d rows, want 0", len(results))
	}
	if total != 0 {
		t.Errorf("grand total = %v, want 0", total)
	}
}

func TestDefaultersReport(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"customer_id", "customer_name", "phone", "customer_type", "unpaid_bills", "total_due",
	}).
		AddRow("CUST-101", "Acme Industries", "0700111222", "Commercial", 3, 12500.0).
		AddRow("CUST-245", "Jane Wairimu", "0711333444", "Residential", 1, 950.0)
	// Fixed endpoint passes no range: all unpaid bills, no bound args.
	mock.ExpectQuery("SELECT c.customer_id, c.customer_name, c.phone").
		WillReturnRows(rows)

	results, err := db.DefaultersReport(context.Background(), nil)
	if err != nil {
		t.Fatalf("DefaultersReport() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("DefaultersReport() returned %d rows, want 2", len(results))
	}
	if results[0].TotalDue != 12500.0 || results[0].UnpaidBills != 3 {
		t.Errorf("first defaulter = %+v, want 3 bills / 12500 due", results[0])
	}
}

func TestDefaultersReportWithRange(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT c.customer_id, c.customer_name, c.phone").
		WithArgs("2026-01-01", "2026-06-30").
		WillReturnRows(sqlmock.NewRows([]string{
			"customer_id", "customer_name", "phone", "customer_type", "unpaid_bills", "total_due",
		}))

	rng := &ReportRange{Start: "2026-01-01", End: "2026-06-30"}
	if _, err := db.DefaultersReport(context.Background(), rng); err != nil {
		t.Fatalf("DefaultersReport() error = %v", err)
	}
}

func TestUsageReport(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"rank", "customer_id", "customer_name", "utility_name", "consumption",
	}).
		AddRow(1, "CUST-101", "Acme Industries", "Electricity", "12,400 kWh").
		AddRow(1, "CUST-245", "Jane Wairimu", "Water", "12,400 L").
		AddRow(3, "CUST-300", "Kwame Hostels", "Electricity", "8,100 kWh")
	mock.ExpectQuery("SELECT RANK\\(\\) OVER").
		WithArgs("2026-03-01", "2026-03-31").
		WillReturnRows(rows)

	rng := &ReportRange{Start: "2026-03-01", End: "2026-03-31"}
	results, err := db.UsageReport(context.Background(), rng)
	if err != nil {
		t.Fatalf("UsageReport() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("UsageReport() returned %d rows, want 3", len(results))
	}
	// Competition ranking: tied totals share rank 1, next resumes at 3.
	if results[0].Rank != 1 || results[1].Rank != 1 || results[2].Rank != 3 {
		t.Errorf("ranks = %d,%d,%d, want 1,1,3",
			results[0].Rank, results[1].Rank, results[2].Rank)
	}
	if results[0].Consumption != "12,400 kWh" {
		t.Errorf("consumption = %q, want %q", results[0].Consumption, "12,400 kWh")
	}
}

func TestRevenueTrends(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"month", "electricity", "water", "gas", "total_revenue",
	}).
		AddRow("Jan 2026", 5000.0, 1200.0, 0.0, 6200.0).
		AddRow("Feb 2026", 4800.0, 0.0, 300.0, 5100.0)
	mock.ExpectQuery("SELECT to_char\\(date_trunc\\('month', p.payment_date\\)").
		WithArgs("2025-09-01", "2026-02-15").
		WillReturnRows(rows)

	rng := &ReportRange{Start: "2025-09-01", End: "2026-02-15"}
	results, err := db.RevenueTrends(context.Background(), rng)
	if err != nil {
		t.Fatalf("RevenueTrends() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("RevenueTrends() returned %d rows, want 2", len(results))
	}
	if results[0].Gas != 0 {
		t.Errorf("Jan gas = %v, want 0 for a month without gas payments", results[0].Gas)
	}
	if results[1].TotalRevenue != 5100.0 {
		t.Errorf("Feb total = %v, want 5100", results[1].TotalRevenue)
	}
}

func TestReportQueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT RANK\\(\\) OVER").
		WillReturnError(fmt.Errorf("relation does not exist"))

	if _, err := db.UsageReport(context.Background(), nil); err == nil {
		t.Fatal("UsageReport() expected error, got nil")
	}
}

func TestTrailingRange(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	rng := TrailingRange(now, 30)
	if rng.Start != "2026-08-01" {
		t.Errorf("Start = %q, want %q", rng.Start, "2026-08-01")
	}
	if rng.End != "2026-08-31" {
		t.Errorf("End = %q, want %q", rng.End, "2026-08-31")
	}
}

func TestTrailingMonths(t *testing.T) {
	// Six full prior months plus the current partial one: from August the
	// window reaches back to the first of February.
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	rng := TrailingMonths(now, 6)
	if rng.Start != "2026-02-01" {
		t.Errorf("Start = %q, want %q", rng.Start, "2026-02-01")
	}
	if rng.End != "2026-08-15" {
		t.Errorf("End = %q, want %q", rng.End, "2026-08-15")
	}
}

func TestTrailingMonthsYearBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rng := TrailingMonths(now, 6)
	if rng.Start != "2025-09-01" {
		t.Errorf("Start = %q, want %q", rng.Start, "2025-09-01")
	}
}
