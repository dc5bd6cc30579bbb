package jobs

import (
	"casa_hotels_go/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SessionCleanupSchedule runs at the top of every hour
const SessionCleanupSchedule = "0 * * * *"

// StartScheduler registers the maintenance jobs and starts the cron runner.
// The returned scheduler should be stopped on shutdown.
func StartScheduler(database *gorm.DB, loc *time.Location) *cron.Cron {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	if err := RegisterJobs(c, database); err != nil {
		log.Fatalf("[CRON] Failed to schedule jobs: %v", err)
	}

	c.Start()
	log.Println("[CRON] Scheduler started")
	return c
}

// RegisterJobs adds the maintenance jobs to c without starting it
func RegisterJobs(c *cron.Cron, database *gorm.DB) error {
	_, err := c.AddFunc(SessionCleanupSchedule, func() {
		CleanupVisitorSessions(database)
	})
	return err
}

// CleanupVisitorSessions drops expired visitor sessions and their stored searches
func CleanupVisitorSessions(database *gorm.DB) {
	removed, err := services.CleanupExpiredSessions(database)
	if err != nil {
		log.Printf("[CRON] Session cleanup failed: %v", err)
		return
	}
	log.Printf("[CRON] Session cleanup removed %d sessions", removed)
}
