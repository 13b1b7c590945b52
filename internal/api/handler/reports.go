package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/internal/period"
	"github.com/akozyrev/basket-analytics-api/internal/usecases/reporting"
	"github.com/akozyrev/basket-analytics-api/pkg/apiErrors"
	"github.com/akozyrev/basket-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reportSelection is the (window, channel) pair shared by every report
// endpoint, parsed from the query string.
type reportSelection struct {
	Period  domain.DateRange
	Channel domain.SalesChannel
}

// parseReportSelection resolves period/start/end and channel query
// parameters. It writes the error response itself and reports success via
// the second return value.
func parseReportSelection(w http.ResponseWriter, r *http.Request) (*reportSelection, bool) {
	query := r.URL.Query()

	dateRange, err := period.Resolve(period.Query{
		Keyword:   query.Get("period"),
		StartDate: query.Get("start"),
		EndDate:   query.Get("end"),
	})
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("reports: rejected period selection")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, pkgerrors.Wrap(err, "could not resolve period").Error(), nil)
		return nil, false
	}

	channel, err := domain.ParseSalesChannel(query.Get("channel"))
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("reports: rejected channel selection")
		apiErrors.WriteError(w, apiErrors.ErrInvalidChannel, err.Error(), nil)
		return nil, false
	}

	return &reportSelection{Period: dateRange, Channel: channel}, true
}

// parseLimit reads an optional positive integer limit; zero means "use the
// configured default".
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidLimit, "limit must be a positive integer", nil)
		return 0, false
	}

	return limit, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("reports: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetBasketSummary serves the aggregate basket KPI report
func GetBasketSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		summary, err := service.GetBasketSummary(selection.Period, selection.Channel)
		if err != nil {
			logger.WithError(err).Error("basket-summary: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"channel":      selection.Channel,
			"total_orders": summary.TotalOrders,
		}).Info("basket-summary: report generated")

		writeJSON(w, r, summary)
	})
}

// GetBasketDistribution serves the basket-size distribution report
func GetBasketDistribution(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		buckets, err := service.GetBasketDistribution(selection.Period, selection.Channel)
		if err != nil {
			logger.WithError(err).Error("basket-distribution: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, r, buckets)
	})
}

// GetProductAffinity serves the ranked product pair report
func GetProductAffinity(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		var anchorProductID int64
		if raw := r.URL.Query().Get("anchorProductId"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "anchorProductId must be a positive integer", nil)
				return
			}
			anchorProductID = parsed
		}

		pairs, err := service.GetProductAffinity(selection.Period, selection.Channel, limit, anchorProductID)
		if err != nil {
			logger.WithError(err).Error("product-affinity: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"channel": selection.Channel,
			"pairs":   len(pairs),
		}).Info("product-affinity: report generated")

		writeJSON(w, r, pairs)
	})
}

// GetCategoryAffinity serves the ranked category pair report
func GetCategoryAffinity(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		pairs, err := service.GetCategoryAffinity(selection.Period, selection.Channel, limit)
		if err != nil {
			logger.WithError(err).Error("category-affinity: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, r, pairs)
	})
}

// GetBrandAffinity serves the ranked brand pair report
func GetBrandAffinity(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		pairs, err := service.GetBrandAffinity(selection.Period, selection.Channel, limit)
		if err != nil {
			logger.WithError(err).Error("brand-affinity: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, r, pairs)
	})
}

// GetProductMomentum serves the gainers/losers report
func GetProductMomentum(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseReportSelection(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		report, err := service.GetProductMomentum(selection.Period, selection.Channel, limit)
		if err != nil {
			logger.WithError(err).Error("momentum: report failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"channel": selection.Channel,
			"gainers": len(report.Gainers),
			"losers":  len(report.Losers),
		}).Info("momentum: report generated")

		writeJSON(w, r, report)
	})
}
