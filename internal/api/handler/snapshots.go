package handler

import (
	"net/http"
	"time"

	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/pkg/apiErrors"
	"github.com/akozyrev/basket-analytics-api/pkg/log"
)

// GetSummaryHistory serves the stored daily basket summaries for a date
// range, as materialized by the snapshot job.
func GetSummaryHistory(snapshotRepo repository.SummarySnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		startDate, err := time.Parse(time.DateOnly, query.Get("start"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "start must be a YYYY-MM-DD date", nil)
			return
		}

		endDate, err := time.Parse(time.DateOnly, query.Get("end"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "end must be a YYYY-MM-DD date", nil)
			return
		}

		channel, err := domain.ParseSalesChannel(query.Get("channel"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidChannel, err.Error(), nil)
			return
		}

		snapshots, err := snapshotRepo.GetByDateRange(startDate, endDate, channel)
		if err != nil {
			logger.WithError(err).Error("summary-history: failed to read snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"channel":   channel,
			"snapshots": len(snapshots),
		}).Info("summary-history: report generated")

		writeJSON(w, r, snapshots)
	})
}
