package chatbot

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

// Sweeper membuang session MemoryStore yang idle lebih lama dari ttl.
// RedisStore tidak butuh sweeper karena key punya TTL sendiri.
type Sweeper struct {
	scheduler gocron.Scheduler
	store     *MemoryStore
	ttl       time.Duration
}

func NewSweeper(store *MemoryStore, ttl, interval time.Duration) (*Sweeper, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &Sweeper{scheduler: sched, store: store, ttl: ttl}
	if _, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.Sweep() }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}
	return s, nil
}

// Sweep dijalankan oleh scheduler, juga bisa dipanggil langsung
func (s *Sweeper) Sweep() int {
	removed := s.store.Prune(time.Now().Add(-s.ttl))
	if removed > 0 {
		utils.InfoLogger.Printf("Chat sweeper removed %d idle sessions", removed)
	}
	return removed
}

func (s *Sweeper) Start() {
	s.scheduler.Start()
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}
