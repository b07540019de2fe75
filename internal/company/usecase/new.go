package usecase

import (
	"time"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/company/repository"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/metrics"
	"dashboard-srv/pkg/paginator"
)

// Config tunes the orchestrator.
type Config struct {
	DefaultLimit int64 // page size when the caller gives none
	RecentEvents int   // events kept for Status
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: paginator.DefaultLimit,
		RecentEvents: 50,
	}
}

type implUseCase struct {
	l        log.Logger
	gateway  gateway.IGateway
	repo     repository.CacheRepository
	reporter company.Reporter
	metrics  metrics.IRecorder
	tracker  *tracker
	journal  *journal
	cfg      Config
	now      func() time.Time
}

// New creates the orchestrator. reporter and recorder may be nil.
func New(
	l log.Logger,
	gw gateway.IGateway,
	repo repository.CacheRepository,
	reporter company.Reporter,
	recorder metrics.IRecorder,
	cfg Config,
) company.UseCase {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = paginator.DefaultLimit
	}
	if cfg.RecentEvents <= 0 {
		cfg.RecentEvents = DefaultConfig().RecentEvents
	}
	if recorder == nil {
		recorder = metrics.NewNop()
	}

	j := newJournal(cfg.RecentEvents)
	return &implUseCase{
		l:        l,
		gateway:  gw,
		repo:     repo,
		reporter: fanOut(j, reporter),
		metrics:  recorder,
		tracker:  newTracker(),
		journal:  j,
		cfg:      cfg,
		now:      time.Now,
	}
}
