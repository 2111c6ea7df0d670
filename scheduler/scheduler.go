package scheduler

import (
	"context"
	"time"

	"casatente/config"
	"casatente/infras/otel"
	reservationService "casatente/internal/domains/reservation/service"
	"casatente/shared/constant"
	"casatente/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the daily reservation lifecycle sweep. The clock is
// injectable so tests can drive the sweep to arbitrary days.
type Scheduler struct {
	cfg         *config.Config
	reservation reservationService.Reservation
	otel        otel.Otel
	cron        *cron.Cron
	now         func() time.Time
}

func New(cfg *config.Config, reservation reservationService.Reservation, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cfg:         cfg,
		reservation: reservation,
		otel:        otel,
		now:         timezone.Now,
	}
}

// WithNow overrides the sweep clock.
func (s *Scheduler) WithNow(now func() time.Time) *Scheduler {
	s.now = now

	return s
}

// Start registers the sweep on the configured cron schedule and runs it once
// immediately so a freshly started service catches up on missed days.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.cfg.Sweep.Enable {
		log.Info().Msg("Lifecycle sweep disabled by configuration")

		return nil
	}

	s.cron = cron.New(cron.WithLocation(timezone.GetLocation()))

	_, err := s.cron.AddFunc(s.cfg.Sweep.Schedule, func() {
		s.Run(ctx)
	})
	if err != nil {
		return err
	}

	s.Run(ctx)
	s.cron.Start()

	log.Info().Str("schedule", s.cfg.Sweep.Schedule).Msg("Lifecycle sweep scheduled")

	return nil
}

// Run executes one sweep pass.
func (s *Scheduler) Run(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Run")
	defer scope.End()

	now := s.now()

	if err := s.reservation.Reconcile(ctx, now); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Time("now", now).Msg("Lifecycle sweep failed")

		return
	}

	log.Info().Time("now", now).Msg("Lifecycle sweep completed")
}

// Stop halts the cron loop, waiting for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}

	<-s.cron.Stop().Done()
}
