package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/goodtill-sales-archiver/internal/config"
	"github.com/vfg2006/goodtill-sales-archiver/internal/usecases/exporting"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

// DailyExportSyncConfig holds the scheduler settings for the daily export
type DailyExportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailyExportSyncService schedules and runs the daily sales export in serve
// mode. Each scheduled run archives yesterday's sales.
type DailyExportSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyExportSyncConfig
	exporter            *exporting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailyExportSyncService(exporter *exporting.Service, appConfig *config.Config) *DailyExportSyncService {
	syncConfig := DailyExportSyncConfig{
		CronSchedule: appConfig.DailyExportSync.CronSchedule,
		SyncEnabled:  appConfig.DailyExportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Daily export scheduler configuration loaded")

	return &DailyExportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		exporter:  exporter,
	}
}

// Start schedules the daily export and runs the scheduler in the background
// until the context is cancelled.
func (s *DailyExportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Daily export sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting daily export scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runExport(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling daily export: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping daily export scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runExport archives yesterday's sales, skipping if a run is in flight
func (s *DailyExportSyncService) runExport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Daily export already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	day := utils.Yesterday()

	logrus.WithField("date", day.Format(time.DateOnly)).Info("Starting scheduled daily export")

	result, err := s.exporter.Export(ctx, day)
	if err != nil {
		logrus.WithError(err).WithField("date", day.Format(time.DateOnly)).Error("Scheduled daily export failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"date":     result.Date,
		"records":  result.Records,
		"skipped":  result.Skipped,
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Scheduled daily export finished")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync starts an export run outside the schedule
func (s *DailyExportSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Daily export already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual daily export")
	go s.runExport(ctx)
}

// GetStatus returns the scheduler's current state
func (s *DailyExportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
