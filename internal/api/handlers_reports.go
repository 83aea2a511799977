// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package api

import (
	"net/http"

	"github.com/metergate/metergate/internal/database"
	"github.com/metergate/metergate/internal/logging"
	"github.com/metergate/metergate/internal/models"
)

// Reports dispatches the parameterized report endpoint. All three query
// parameters are required and the dates must be YYYY-MM-DD; validation
// failures return 400 before any query runs. An unrecognized type is not
// an error: it returns an empty success payload without touching the
// database, so the frontend's report picker can grow ahead of the
// gateway.
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	query := models.ReportQuery{
		Type:  r.URL.Query().Get("type"),
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if !validateRequest(w, r, &query) {
		return
	}

	rng := &database.ReportRange{Start: query.Start, End: query.End}

	switch query.Type {
	case "revenue":
		rows, total, err := h.db.RevenueReport(r.Context(), rng)
		if err != nil {
			h.reportError(w, r, "revenue", err)
			return
		}
		respondJSON(w, http.StatusOK, &models.ReportResponse{Success: true, Data: rows, Total: total})

	case "defaulters":
		rows, err := h.db.DefaultersReport(r.Context(), rng)
		if err != nil {
			h.reportError(w, r, "defaulters", err)
			return
		}
		var total float64
		for _, d := range rows {
			total += d.TotalDue
		}
		respondJSON(w, http.StatusOK, &models.ReportResponse{Success: true, Data: rows, Total: total})

	case "usage":
		rows, err := h.db.UsageReport(r.Context(), rng)
		if err != nil {
			h.reportError(w, r, "usage", err)
			return
		}
		respondJSON(w, http.StatusOK, &models.ReportResponse{Success: true, Data: rows})

	default:
		respondJSON(w, http.StatusOK, &models.ReportResponse{Success: true, Data: []interface{}{}})
	}
}

func (h *Handler) reportError(w http.ResponseWriter, r *http.Request, reportType string, err error) {
	logging.Ctx(r.Context()).Error().
		Str("report_type", reportType).
		Err(err).
		Msg("Report query failed")
	respondError(w, r, http.StatusInternalServerError, "Failed to generate report", nil)
}

// Defaulters is the fixed dashboard endpoint: every customer currently
// holding unpaid or overdue bills, over all time.
func (h *Handler) Defaulters(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.DefaultersReport(r.Context(), nil)
	if err != nil {
		h.reportError(w, r, "defaulters", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    rows,
	})
}

// ConsumptionData is the fixed dashboard endpoint: ranked consumption
// over the trailing 30 days.
func (h *Handler) ConsumptionData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.UsageReport(r.Context(), database.TrailingRange(h.now(), 30))
	if err != nil {
		h.reportError(w, r, "usage", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    rows,
	})
}

// RevenueTrends is the fixed dashboard endpoint: monthly collections per
// utility over the six full months before the current one plus the
// current partial month.
func (h *Handler) RevenueTrends(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.RevenueTrends(r.Context(), database.TrailingMonths(h.now(), 6))
	if err != nil {
		h.reportError(w, r, "revenue_trends", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    rows,
	})
}
