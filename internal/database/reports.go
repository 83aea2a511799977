// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

/*
reports.go - Reporting Queries

All report families run through one shared range-clause builder. The fixed
dashboard endpoints and the parameterized report dispatcher call the same
query methods: the dispatcher passes the client's date range, the fixed
endpoints pass either nil (all time) or a window computed from the clock.

Aggregation, ranking and pivoting are delegated to SQL. The only report
post-processed in Go is the defaulters total, which the API layer sums
from the returned rows.
*/
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/metergate/metergate/internal/metrics"
	"github.com/metergate/metergate/internal/models"
)

// ReportRange is an inclusive date window in YYYY-MM-DD form. A nil range
// means no date filtering.
type ReportRange struct {
	Start string
	End   string
}

// appendRangeClause appends an inclusive date filter on column when a
// range is set. Placeholders are numbered from the current argument count,
// so each query binds its own copy of the range values.
func appendRangeClause(column string, rng *ReportRange, args []interface{}) (string, []interface{}) {
	if rng == nil {
		return "", args
	}
	clause := fmt.Sprintf(" AND %s::date BETWEEN $%d AND $%d", column, len(args)+1, len(args)+2)
	return clause, append(args, rng.Start, rng.End)
}

// RevenueReport returns payment collections grouped by day and utility,
// plus the grand total over the same window. The rows and the total come
// from two sequential queries, each binding the range independently.
// An empty window yields no rows and a zero total.
func (db *DB) RevenueReport(ctx context.Context, rng *ReportRange) ([]models.RevenueRow, float64, error) {
	whereClause, args := appendRangeClause("p.payment_date", rng, nil)

	query := fmt.Sprintf(`
	SELECT to_char(p.payment_date, 'YYYY-MM-DD') AS date,
	       u.utility_name,
	       COUNT(*) AS payments_received,
	       SUM(p.payment_amount) AS total
	FROM payments p
	JOIN bills b ON b.bill_id = p.bill_id
	JOIN meters m ON m.meter_id = b.meter_id
	JOIN utility_types u ON u.utility_id = m.utility_id
	WHERE 1=1%s
	GROUP BY to_char(p.payment_date, 'YYYY-MM-DD'), u.utility_name
	ORDER BY date, u.utility_name`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("report_revenue", time.Since(start), err)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query revenue report: %w", err)
	}
	defer closeRows(rows, "revenue_report")

	results := []models.RevenueRow{}
	for rows.Next() {
		var r models.RevenueRow
		if err := rows.Scan(&r.Date, &r.Utility, &r.PaymentsReceived, &r.Total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating revenue rows: %w", err)
	}

	grandTotal, err := db.revenueGrandTotal(ctx, rng)
	if err != nil {
		return nil, 0, err
	}

	return results, grandTotal, nil
}

func (db *DB) revenueGrandTotal(ctx context.Context, rng *ReportRange) (float64, error) {
	whereClause, args := appendRangeClause("p.payment_date", rng, nil)

	query := fmt.Sprintf(`
	SELECT COALESCE(SUM(p.payment_amount), 0)
	FROM payments p
	WHERE 1=1%s`, whereClause)

	start := time.Now()
	var total float64
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(&total)
	metrics.RecordDBQuery("report_revenue_total", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to query revenue grand total: %w", err)
	}

	return total, nil
}

// DefaultersReport returns customers holding unpaid or overdue bills,
// grouped with the bill count and summed amount due, largest debt first.
func (db *DB) DefaultersReport(ctx context.Context, rng *ReportRange) ([]models.Defaulter, error) {
	whereClause, args := appendRangeClause("b.bill_date", rng, nil)

	query := fmt.Sprintf(`
	SELECT c.customer_id, c.customer_name, c.phone, c.customer_type,
	       COUNT(*) AS unpaid_bills,
	       SUM(b.amount_due) AS total_due
	FROM bills b
	JOIN customers c ON c.customer_id = b.customer_id
	WHERE b.status IN ('Unpaid', 'Overdue')%s
	GROUP BY c.customer_id, c.customer_name, c.phone, c.customer_type
	ORDER BY total_due DESC`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("report_defaulters", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query defaulters report: %w", err)
	}
	defer closeRows(rows, "defaulters_report")

	results := []models.Defaulter{}
	for rows.Next() {
		var d models.Defaulter
		if err := rows.Scan(&d.CustomerID, &d.CustomerName, &d.Phone, &d.CustomerType,
			&d.UnpaidBills, &d.TotalDue); err != nil {
			return nil, fmt.Errorf("failed to scan defaulter row: %w", err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating defaulter rows: %w", err)
	}

	return results, nil
}

// UsageReport returns per-customer, per-utility consumption totals ranked
// with competition ranking (equal totals share a rank and the next
// distinct total resumes at the row count plus one). Consumption is
// formatted in SQL as a grouped number followed by the utility's unit,
// e.g. "1,234 kWh". Rows with zero consumption are excluded.
func (db *DB) UsageReport(ctx context.Context, rng *ReportRange) ([]models.UsageRow, error) {
	whereClause, args := appendRangeClause("b.bill_date", rng, nil)

	query := fmt.Sprintf(`
	SELECT RANK() OVER (ORDER BY SUM(b.consumption) DESC) AS rank,
	       c.customer_id, c.customer_name, u.utility_name,
	       to_char(SUM(b.consumption), 'FM999,999,999,999') || ' ' || u.unit AS consumption
	FROM bills b
	JOIN customers c ON c.customer_id = b.customer_id
	JOIN meters m ON m.meter_id = b.meter_id
	JOIN utility_types u ON u.utility_id = m.utility_id
	WHERE 1=1%s
	GROUP BY c.customer_id, c.customer_name, u.utility_name, u.unit
	HAVING SUM(b.consumption) > 0
	ORDER BY rank`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("report_usage", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage report: %w", err)
	}
	defer closeRows(rows, "usage_report")

	results := []models.UsageRow{}
	for rows.Next() {
		var u models.UsageRow
		if err := rows.Scan(&u.Rank, &u.CustomerID, &u.CustomerName, &u.Utility, &u.Consumption); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		results = append(results, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}

	return results, nil
}

// RevenueTrends returns monthly collections pivoted into one column per
// known utility. Months inside the window with payments for only some
// utilities get 0 in the missing columns; TotalRevenue is the sum of the
// three utility columns.
func (db *DB) RevenueTrends(ctx context.Context, rng *ReportRange) ([]models.RevenueTrendRow, error) {
	whereClause, args := appendRangeClause("p.payment_date", rng, nil)

	query := fmt.Sprintf(`
	SELECT to_char(date_trunc('month', p.payment_date), 'Mon YYYY') AS month,
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Electricity'), 0) AS electricity,
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Water'), 0) AS water,
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Gas'), 0) AS gas,
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Electricity'), 0) +
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Water'), 0) +
	       COALESCE(SUM(p.payment_amount) FILTER (WHERE u.utility_name = 'Gas'), 0) AS total_revenue
	FROM payments p
	JOIN bills b ON b.bill_id = p.bill_id
	JOIN meters m ON m.meter_id = b.meter_id
	JOIN utility_types u ON u.utility_id = m.utility_id
	WHERE 1=1%s
	GROUP BY date_trunc('month', p.payment_date)
	ORDER BY date_trunc('month', p.payment_date)`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("report_revenue_trends", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue trends: %w", err)
	}
	defer closeRows(rows, "revenue_trends")

	results := []models.RevenueTrendRow{}
	for rows.Next() {
		var r models.RevenueTrendRow
		if err := rows.Scan(&r.Month, &r.Electricity, &r.Water, &r.Gas, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue trend row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue trend rows: %w", err)
	}

	return results, nil
}

// TrailingRange builds the inclusive window ending today and starting the
// given number of days back. Used by the fixed consumption endpoint.
func TrailingRange(now time.Time, days int) *ReportRange {
	return &ReportRange{
		Start: now.AddDate(0, 0, -days).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}
}

// TrailingMonths builds the window covering the given number of full
// months before the current one plus the current partial month, so a
// 6-month trend spans seven labeled months. Used by the fixed revenue
// trends endpoint.
func TrailingMonths(now time.Time, months int) *ReportRange {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return &ReportRange{
		Start: firstOfMonth.AddDate(0, -months, 0).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}
}
