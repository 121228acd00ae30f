package refresh

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"cityweather/internal/weather"
)

// Refresher periodically re-fetches weather for the currently displayed
// location so a long-lived dashboard does not go stale.
type Refresher struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	interval  time.Duration
}

// New creates a new Refresher.
func New(service *weather.Service, interval time.Duration) *Refresher {
	s := gocron.NewScheduler(time.UTC)
	return &Refresher{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// A non-positive interval disables refreshing.
func (r *Refresher) Start() error {
	if r.interval <= 0 {
		log.Println("refresh: disabled; nothing to schedule")
		return nil
	}

	minutes := int(r.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := r.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("refresh: updating displayed location")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status := r.service.Refresh(ctx)
		if status.Phase == weather.PhaseFailed {
			log.Printf("refresh: update failed: %s", status.Message)
		}
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
