package cron

import (
	"github.com/collegemetrics/api/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronManager manages all scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	exports *services.ExportService
}

// NewCronManager creates a new cron manager
func NewCronManager(exports *services.ExportService) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:    c,
		exports: exports,
	}
}

// Start registers and starts all jobs
func (m *CronManager) Start() error {
	zap.L().Info("starting cron jobs")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	zap.L().Info("cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *CronManager) Stop() {
	zap.L().Info("stopping cron jobs")
	ctx := m.cron.Stop()
	<-ctx.Done()
	zap.L().Info("cron jobs stopped")
}

// registerJobs registers all jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Nightly at 1 AM: render the report catalog into the export directory
	_, err := m.cron.AddFunc("0 0 1 * * *", m.RunNightlyExport)
	if err != nil {
		return err
	}

	// Daily at 2 AM: drop exports older than the retention window
	_, err = m.cron.AddFunc("0 0 2 * * *", m.RunExportCleanup)
	if err != nil {
		return err
	}

	return nil
}
