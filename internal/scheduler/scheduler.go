package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/transgraos/fretelog/internal/config"
	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/period"
	"github.com/transgraos/fretelog/internal/repository/mongodb"
	"github.com/transgraos/fretelog/internal/repository/sheets"
	"github.com/transgraos/fretelog/internal/service/ledger"
)

// Scheduler runs the periodic closing: refresh the snapshot, aggregate the
// current period, persist the closing and export the report row.
type Scheduler struct {
	cron      *cron.Cron
	ledgerSvc *ledger.Service
	repo      mongodb.Repository
	exporter  sheets.Exporter
	cfg       config.ClosingConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. The exporter may be nil
// when spreadsheet export is not configured.
func NewScheduler(cfg config.ClosingConfig, ledgerSvc *ledger.Service, repo mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(location)),
		ledgerSvc: ledgerSvc,
		repo:      repo,
		exporter:  exporter,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Start registers the closing job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runClosing); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runClosing() {
	s.logger.Info("running period closing")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.ledgerSvc.Refresh(ctx); err != nil {
		// Partial data is tolerable; the summary degrades to fallbacks.
		s.logger.Warn("refresh before closing was incomplete", zap.Error(err))
	}

	granularity := period.ParseGranularity(s.cfg.Granularity)
	summary := s.ledgerSvc.Summary(granularity, "")

	snapshot := models.ClosingSnapshot{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now(),
		Summary:        summary,
		AvailableCount: len(s.ledgerSvc.Available()),
	}

	if err := s.repo.SaveClosingSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to persist closing snapshot", zap.Error(err))
		return
	}

	if s.exporter != nil {
		if err := s.exporter.AppendClosing(ctx, snapshot); err != nil {
			s.logger.Error("failed to export closing row", zap.Error(err))
			return
		}
	}

	s.logger.Info("period closing stored",
		zap.String("periodo", summary.PeriodKey),
		zap.Float64("resultado", summary.Result))
}
