package cron

import (
	"testing"
	"time"
)

func TestSchedulerRegistersJobs(t *testing.T) {
	m := NewCronManager(nil)
	if err := m.Start(); err != nil {
		t.Fatalf("Failed to start scheduler: %v", err)
	}
	defer m.Stop()

	entries := m.cron.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 scheduled jobs, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Next.IsZero() {
			t.Errorf("Job %d has no next run time", i)
		}
		if time.Until(entry.Next) > 24*time.Hour {
			t.Errorf("Job %d scheduled more than a day out: %s", i, entry.Next)
		}
	}
}
