package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/papsoui3/PortofolioSite/internal/contacts"
	"github.com/papsoui3/PortofolioSite/internal/projects"
)

// Scheduler purges archived contact messages past their retention window
// and permanently drops soft-deleted projects.
type Scheduler struct {
	contactRepo *contacts.Repo
	projectRepo *projects.Repo
	retention   time.Duration
	cron        *cron.Cron
}

func NewScheduler(contactRepo *contacts.Repo, projectRepo *projects.Repo, retention time.Duration) *Scheduler {
	return &Scheduler{
		contactRepo: contactRepo,
		projectRepo: projectRepo,
		retention:   retention,
	}
}

// Start schedules the nightly purge (12:00 AM).
func (s *Scheduler) Start() {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * *", s.RunPurge)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cleanup scheduler started (running nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler. Running jobs finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunPurge executes one purge cycle. Exported so it can run on demand.
func (s *Scheduler) RunPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := s.contactRepo.PurgeArchived(ctx, s.retention)
	if err != nil {
		log.Printf("Purge of archived messages failed: %v", err)
	} else if n > 0 {
		log.Printf("Purged %d archived contact messages", n)
	}

	// Soft-deleted projects linger for 30 days in case of an accidental delete.
	n, err = s.projectRepo.PurgeDeleted(ctx, 30*24*time.Hour)
	if err != nil {
		log.Printf("Purge of deleted projects failed: %v", err)
	} else if n > 0 {
		log.Printf("Purged %d deleted projects", n)
	}
}
