// Package service owns the registry aggregate: the ledger, directory, access
// controller, and derived indices behind one single-writer boundary. All
// mutation entry points validate fully, persist, and only then touch the
// in-memory aggregate, so a rejected or failed operation leaves every piece
// of state exactly as it was.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"fraudregistry/internal/audit"
	"fraudregistry/internal/platform/metrics"
	"fraudregistry/internal/registry/access"
	"fraudregistry/internal/registry/directory"
	"fraudregistry/internal/registry/ledger"
	"fraudregistry/internal/registry/models"
	"fraudregistry/internal/registry/query"
	"fraudregistry/internal/registry/store"
	"fraudregistry/internal/registry/verification"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// Service is the registry aggregate. Mutations run under the write lock, so
// at most one is in flight and they are totally ordered; read-only queries
// share the read lock and always observe the most recently committed state,
// never a partially applied mutation.
type Service struct {
	mu sync.RWMutex

	access    *access.Controller
	directory *directory.Directory
	ledger    *ledger.Ledger
	engine    *verification.Engine
	queries   *query.Index

	store   store.Store
	auditor *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures optional collaborators.
type Option func(*Service)

func WithStore(s store.Store) Option {
	return func(svc *Service) { svc.store = s }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(svc *Service) { svc.auditor = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(svc *Service) { svc.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.logger = l }
}

// New builds the aggregate, recovers persisted state, and bootstraps the
// initializing identity as both owner and authorized agency when the store is
// empty. ownerAPIKey may be empty; the owner then cannot obtain tokens until
// re-registered with a key.
func New(ctx context.Context, owner id.AgencyID, ownerName, ownerAPIKey string, opts ...Option) (*Service, error) {
	l := ledger.New()
	d := directory.New()

	svc := &Service{
		access:    access.New(owner),
		directory: d,
		ledger:    l,
		engine:    verification.New(l, d),
		queries:   query.New(l, d),
		store:     store.NewMemory(),
		logger:    slog.Default(),
		tracer:    otel.Tracer("fraudregistry/registry"),
	}
	for _, opt := range opts {
		opt(svc)
	}

	state, err := svc.store.Load(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load registry state")
	}

	if state.Owner.IsZero() {
		if err := svc.bootstrap(ctx, owner, ownerName, ownerAPIKey); err != nil {
			return nil, err
		}
		return svc, nil
	}

	svc.access.Restore(state.Owner, state.Paused)
	svc.directory.Restore(state.Agencies)
	if err := svc.ledger.Restore(state.Reports); err != nil {
		return nil, err
	}
	svc.queries.Restore()
	svc.metrics.SetLedgerSize(svc.ledger.Len())

	svc.logger.InfoContext(ctx, "registry state recovered",
		"reports", svc.ledger.Len(),
		"agencies", len(state.Agencies),
		"owner", state.Owner.String(),
		"paused", state.Paused,
	)
	return svc, nil
}

func (s *Service) bootstrap(ctx context.Context, owner id.AgencyID, ownerName, ownerAPIKey string) error {
	agency, err := models.NewAgency(owner, ownerName, time.Now())
	if err != nil {
		return err
	}
	if ownerAPIKey != "" {
		hash, err := hashAPIKey(ownerAPIKey)
		if err != nil {
			return err
		}
		agency.APIKeyHash = hash
	}

	if err := s.store.UpsertAgency(ctx, *agency); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist owner agency")
	}
	if err := s.store.SaveControl(ctx, owner, false); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist control state")
	}

	s.directory.Put(*agency)
	s.logger.InfoContext(ctx, "registry initialized", "owner", owner.String())
	return nil
}

// Owner returns the current owner identity.
func (s *Service) Owner() id.AgencyID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access.Owner()
}

// Paused reports whether the emergency stop is active.
func (s *Service) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access.Paused()
}

// GetReport returns a copy of the report at index.
func (s *Service) GetReport(ctx context.Context, index int64) (models.Report, error) {
	_, span := s.tracer.Start(ctx, "registry.GetReport")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	report, err := s.ledger.Get(index)
	if err != nil {
		return models.Report{}, err
	}
	return *report, nil
}

// ReportsByPlatform pages through the indices of reports for one platform.
func (s *Service) ReportsByPlatform(ctx context.Context, platform string, offset, limit int) ([]int64, error) {
	_, span := s.tracer.Start(ctx, "registry.ReportsByPlatform")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries.ReportsByPlatform(platform, offset, limit)
}

// HighRiskReports lists the most recent high-risk indices.
func (s *Service) HighRiskReports(ctx context.Context, limit int) ([]int64, error) {
	_, span := s.tracer.Start(ctx, "registry.HighRiskReports")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries.HighRiskReports(limit)
}

// Statistics computes the aggregate counts tuple.
func (s *Service) Statistics(ctx context.Context) models.Statistics {
	_, span := s.tracer.Start(ctx, "registry.Statistics")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries.Statistics()
}

// AgencyInfo returns the agency record, or an empty default.
func (s *Service) AgencyInfo(_ context.Context, agencyID id.AgencyID) models.Agency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info := s.queries.AgencyInfo(agencyID)
	info.APIKeyHash = nil
	return info
}

// PlatformCount returns the submission count for one platform.
func (s *Service) PlatformCount(_ context.Context, platform string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries.PlatformCount(platform)
}

// TotalReports returns the ledger length.
func (s *Service) TotalReports(_ context.Context) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries.TotalReports()
}
