// Package scheduler contains the background jobs of the reporting service
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/config"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/internal/usecases/reporting"
	"github.com/akozyrev/basket-analytics-api/pkg/utils"
)

// snapshotChannels is the set of channel selections materialized per day.
var snapshotChannels = []domain.SalesChannel{
	domain.ChannelAll,
	domain.ChannelRetail,
	domain.ChannelWholesale,
}

type SummarySnapshotConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// SummarySnapshotService materializes yesterday's basket summary per
// channel into the snapshot table and prunes expired rows.
type SummarySnapshotService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.BasketReporter
	snapshotRepo        repository.SummarySnapshotRepository
	config              SummarySnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSummarySnapshotService(
	reporter reporting.BasketReporter,
	snapshotRepo repository.SummarySnapshotRepository,
	cfg *config.Config,
) *SummarySnapshotService {
	snapshotConfig := SummarySnapshotConfig{
		CronSchedule:  cfg.SummarySnapshotSync.CronSchedule,
		Enabled:       cfg.SummarySnapshotSync.Enabled,
		RetentionDays: cfg.SummarySnapshotSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"retention_days": snapshotConfig.RetentionDays,
	}).Info("summary snapshot scheduler configuration loaded")

	return &SummarySnapshotService{
		scheduler:    scheduler,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		config:       snapshotConfig,
	}
}

func (s *SummarySnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("summary snapshot cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting summary snapshot cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("summary snapshot run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule summary snapshot job: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping summary snapshot cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot executes one snapshot pass. Overlapping runs are skipped.
func (s *SummarySnapshotService) RunSnapshot() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("summary snapshot run already in progress, skipping")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	yesterday := utils.Truncate(time.Now().AddDate(0, 0, -1))
	period := domain.DateRange{Start: yesterday, End: yesterday}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"date":   yesterday.Format(time.DateOnly),
	})
	logger.Info("starting summary snapshot run")

	for _, channel := range snapshotChannels {
		summary, err := s.reporter.GetBasketSummary(period, channel)
		if err != nil {
			logger.WithError(err).WithField("channel", channel).Error("failed to compute basket summary for snapshot")
			return err
		}

		snapshot := &domain.SummarySnapshot{
			Date:    yesterday,
			Channel: channel,
			Summary: summary,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logger.WithError(err).WithField("channel", channel).Error("failed to store summary snapshot")
			return err
		}
	}

	pruned, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logger.WithError(err).Error("failed to prune expired snapshots")
		return err
	}

	logger.WithFields(logrus.Fields{
		"channels": len(snapshotChannels),
		"pruned":   pruned,
	}).Info("summary snapshot run completed")

	return nil
}

// Status reports whether a run is in progress and the last run timestamps.
func (s *SummarySnapshotService) Status() (bool, time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
