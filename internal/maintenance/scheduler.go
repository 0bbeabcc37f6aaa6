package maintenance

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/leoslab/platform-api/internal/items/repository"
)

// Scheduler runs periodic database maintenance.
type Scheduler struct {
	db     *sql.DB
	driver string
	repo   *repository.ItemRepository
	cron   *cron.Cron
}

func NewScheduler(db *sql.DB, driver string) *Scheduler {
	return &Scheduler{
		db:     db,
		driver: driver,
		repo:   repository.NewItemRepository(db),
	}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runNightlyJobs()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Maintenance scheduler started (running nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) runNightlyJobs() {
	log.Println("Nightly maintenance started...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if s.driver == "sqlite" {
		if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			log.Printf("WAL checkpoint failed: %v", err)
		}
		if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
			log.Printf("PRAGMA optimize failed: %v", err)
		}
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Printf("Item count failed: %v", err)
		return
	}

	log.Printf("Nightly maintenance completed. Total items: %d at: %s", count, time.Now().Format(time.RFC1123))
}
