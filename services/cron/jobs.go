package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunNightlyExport renders the full report catalog to disk. The job
// only reads college data; it never writes back to the database.
func (m *CronManager) RunNightlyExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()

	path, err := m.exports.ExportToFile(ctx)
	if err != nil {
		zap.L().Error("nightly export failed", zap.Error(err))
		return
	}

	zap.L().Info("nightly export written",
		zap.String("path", path),
		zap.Duration("took", time.Since(start)))
}

// RunExportCleanup removes export files older than the retention window
func (m *CronManager) RunExportCleanup() {
	removed, err := m.exports.CleanupOldExports()
	if err != nil {
		zap.L().Error("export cleanup failed", zap.Error(err))
		return
	}

	zap.L().Info("export cleanup finished", zap.Int("removed", removed))
}
