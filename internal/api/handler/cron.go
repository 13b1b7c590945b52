package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/internal/scheduler"
	"github.com/akozyrev/basket-analytics-api/pkg/apiErrors"
)

const (
	CronJobTypeSummarySnapshot = "summary-snapshot"
)

// CronJobServices bundles the background jobs exposed for manual runs
type CronJobServices struct {
	SummarySnapshotService *scheduler.SummarySnapshotService
}

// RunCronJob triggers one background job manually
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		jobType := params.ByName("type")

		switch jobType {
		case CronJobTypeSummarySnapshot:
			go func() {
				if err := services.SummarySnapshotService.RunSnapshot(); err != nil {
					logrus.WithError(err).Error("manual summary snapshot run failed")
				}
			}()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type: "+jobType, nil)
			return
		}

		logrus.WithField("job_type", jobType).Info("cron job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": "started", "job": jobType})
	}
}

type cronJobStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// GetCronStatus reports the state of the background jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, completedAt := services.SummarySnapshotService.Status()

		status := cronJobStatus{Running: running}
		if !startedAt.IsZero() {
			status.LastStartedAt = &startedAt
		}
		if !completedAt.IsZero() {
			status.LastCompletedAt = &completedAt
		}

		writeJSON(w, r, map[string]cronJobStatus{
			CronJobTypeSummarySnapshot: status,
		})
	}
}
