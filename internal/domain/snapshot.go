package domain

import "time"

// SummarySnapshot is a persisted basket summary for one day and channel,
// written by the nightly snapshot job.
type SummarySnapshot struct {
	ID        int64          `json:"id"`
	Date      time.Time      `json:"date"`
	Channel   SalesChannel   `json:"channel"`
	Summary   *BasketSummary `json:"summary"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
