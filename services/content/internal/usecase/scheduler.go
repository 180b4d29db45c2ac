package usecase

import (
	"context"
	"fmt"
	"time"

	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"

	"github.com/robfig/cron/v3"
)

const scheduledRunTimeout = 50 * time.Second

type DuePublisher interface {
	Kind() entity.Kind
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

// Scheduler moves scheduled drafts to published on a cron spec.
type Scheduler struct {
	cron       *cron.Cron
	publishers []DuePublisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewScheduler(spec string, log *logger.Logger, publishers ...DuePublisher) (*Scheduler, error) {
	s := &Scheduler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		publishers: publishers,
		logger:     log,
		now:        func() time.Time { return time.Now().UTC() },
	}

	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		s.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("invalid publish schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("Scheduled publishing started for %d kinds", len(s.publishers))
	s.cron.Start()
}

// Stop waits for a running pass to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce publishes everything due now and returns the total count.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	now := s.now()
	total := 0
	for _, p := range s.publishers {
		n, err := p.PublishDue(ctx, now)
		if err != nil {
			s.logger.Error("Scheduled publishing failed for %s: %v", p.Kind(), err)
			continue
		}
		if n > 0 {
			s.logger.Info("Published %d scheduled %s records", n, p.Kind())
		}
		total += n
	}
	return total
}
