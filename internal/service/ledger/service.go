// Package ledger holds the latest snapshot of the four upstream collections
// and derives every monetary view from it: enriched freights, payment
// availability, period lists and period summaries. All derivations are
// recomputed fresh from the snapshot per call; the snapshot itself is the
// only mutable state and is swapped under a lock.
package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/transgraos/fretelog/internal/availability"
	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/finance"
	"github.com/transgraos/fretelog/internal/period"
	"github.com/transgraos/fretelog/internal/reconcile"
	"github.com/transgraos/fretelog/pkg/clients/freteapi"
)

// Fetcher is the slice of the upstream client the ledger needs.
type Fetcher interface {
	FetchFreightPage(ctx context.Context, page, pageSize int) (*freteapi.FreightPage, error)
	FetchAllFreights(ctx context.Context) ([]models.Freight, error)
	FetchCosts(ctx context.Context) ([]models.Cost, error)
	FetchPayments(ctx context.Context) ([]models.PaymentBatch, error)
	FetchFarms(ctx context.Context) ([]models.FarmStock, error)
}

// Snapshot is one consistent view of the four source collections. The loaded
// flags track partial arrival: a collection that has not loaded yet degrades
// derivations to their safe fallback instead of erroring.
type Snapshot struct {
	Freights []models.Freight
	Costs    []models.Cost
	Payments []models.PaymentBatch
	Farms    []models.FarmStock

	FreightsLoaded bool
	CostsLoaded    bool
	PaymentsLoaded bool
	FarmsLoaded    bool

	RefreshedAt time.Time
}

// Service owns the snapshot and the derivations over it.
type Service struct {
	api    Fetcher
	logger *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

// NewService wires a new ledger instance.
func NewService(api Fetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger, now: time.Now}
}

// Refresh fetches the four collections independently. A failing collection
// keeps its previous data so a partial refresh never wipes loaded state; the
// errors are joined and returned after every fetch was attempted. The final
// derived values do not depend on which collection arrived first.
func (s *Service) Refresh(ctx context.Context) error {
	var errs []error

	if freights, err := s.api.FetchAllFreights(ctx); err != nil {
		s.logger.Warn("freight fetch failed, keeping previous collection", zap.Error(err))
		errs = append(errs, err)
	} else {
		s.mu.Lock()
		s.snap.Freights = freights
		s.snap.FreightsLoaded = true
		s.mu.Unlock()
	}

	if costs, err := s.api.FetchCosts(ctx); err != nil {
		s.logger.Warn("cost fetch failed, keeping previous collection", zap.Error(err))
		errs = append(errs, err)
	} else {
		s.mu.Lock()
		s.snap.Costs = costs
		s.snap.CostsLoaded = true
		s.mu.Unlock()
	}

	if payments, err := s.api.FetchPayments(ctx); err != nil {
		s.logger.Warn("payment fetch failed, keeping previous collection", zap.Error(err))
		errs = append(errs, err)
	} else {
		s.mu.Lock()
		s.snap.Payments = payments
		s.snap.PaymentsLoaded = true
		s.mu.Unlock()
	}

	if farms, err := s.api.FetchFarms(ctx); err != nil {
		s.logger.Warn("farm fetch failed, keeping previous collection", zap.Error(err))
		errs = append(errs, err)
	} else {
		s.mu.Lock()
		s.snap.Farms = farms
		s.snap.FarmsLoaded = true
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.snap.RefreshedAt = s.now()
	s.mu.Unlock()

	s.auditCostLinks()

	return errors.Join(errs...)
}

// Snapshot returns a copy of the current snapshot header. Slices share
// backing arrays; derivations treat them as read-only.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Views derives the enriched freight collection, most recent code first.
func (s *Service) Views() []models.FreightView {
	snap := s.Snapshot()

	views := finance.EnrichAll(snap.Freights, snap.Costs)
	sort.SliceStable(views, func(i, j int) bool {
		return finance.CompareByCodeDesc(views[i].Codigo, views[i].ID, views[j].Codigo, views[j].ID) < 0
	})
	return views
}

// Available lists the freights still eligible for a new payment batch.
func (s *Service) Available() []models.Freight {
	snap := s.Snapshot()
	return availability.ComputeAvailable(snap.Freights, snap.Payments)
}

// EligibleFarms lists farms whose harvest is still open.
func (s *Service) EligibleFarms() []models.FarmStock {
	snap := s.Snapshot()

	eligible := make([]models.FarmStock, 0, len(snap.Farms))
	for _, farm := range snap.Farms {
		if !farm.ColheitaFinalizada {
			eligible = append(eligible, farm)
		}
	}
	return eligible
}

// PeriodOption pairs a derived period key with its display label.
type PeriodOption struct {
	Key   string `json:"periodo"`
	Label string `json:"rotulo"`
}

// Periods derives the sorted period keys present in the freight dataset.
func (s *Service) Periods(g period.Granularity) []PeriodOption {
	snap := s.Snapshot()

	keys := period.DerivePeriods(snap.Freights, g, func(f models.Freight) string { return f.Data })
	options := make([]PeriodOption, 0, len(keys))
	for _, key := range keys {
		options = append(options, PeriodOption{Key: key, Label: period.FormatLabel(key, g)})
	}
	return options
}

// Resolve turns a requested period key (possibly empty or stale) into a
// concrete selection against the current dataset.
func (s *Service) Resolve(g period.Granularity, requested string) period.Selection {
	snap := s.Snapshot()
	keys := period.DerivePeriods(snap.Freights, g, func(f models.Freight) string { return f.Data })

	if requested == "" {
		return period.NewSelection(g, s.now(), keys)
	}
	return period.Selection{Granularity: g, Key: requested}.AfterReload(keys)
}

// Summary aggregates the selected period: freight totals from enriched views
// whose date falls in the bucket, category breakdown from the cost entries
// dated inside it.
func (s *Service) Summary(g period.Granularity, requested string) models.PeriodSummary {
	snap := s.Snapshot()
	sel := s.Resolve(g, requested)

	summary := models.PeriodSummary{
		Granularity:    string(g),
		PeriodKey:      sel.Key,
		PeriodLabel:    sel.Label(),
		CostByCategory: make(map[string]float64),
	}

	var inPeriod []models.FreightView
	for _, view := range finance.EnrichAll(snap.Freights, snap.Costs) {
		if period.BucketKeyOf(view.Data, g) == sel.Key {
			inPeriod = append(inPeriod, view)
		}
	}

	summary.Revenue, summary.Cost, summary.Result = finance.SumResults(inPeriod)
	summary.FreightCount = len(inPeriod)

	var periodCosts []models.Cost
	for _, c := range snap.Costs {
		if period.BucketKeyOf(c.Data, g) == sel.Key {
			periodCosts = append(periodCosts, c)
		}
	}
	for category, amount := range finance.SumCostsByCategory(periodCosts) {
		summary.CostByCategory[string(category)] = amount
	}

	return summary
}

// CostsInPeriod lists the cost entries dated inside the selected period,
// newest freight first: trailing sequence of the freight reference
// descending, then raw identifier descending.
func (s *Service) CostsInPeriod(g period.Granularity, requested string) []models.Cost {
	snap := s.Snapshot()
	sel := s.Resolve(g, requested)

	var costs []models.Cost
	for _, c := range snap.Costs {
		if period.BucketKeyOf(c.Data, g) == sel.Key {
			costs = append(costs, c)
		}
	}

	sort.SliceStable(costs, func(i, j int) bool {
		si, sj := finance.TrailingSequence(costs[i].FreteRef), finance.TrailingSequence(costs[j].FreteRef)
		if si != sj {
			return si > sj
		}
		return costs[i].ID > costs[j].ID
	})
	return costs
}

// auditCostLinks flags cost entries whose reference matches more than one
// distinct freight (id of one record, code of another). Which freight wins
// is an accident of iteration order, so the inconsistency is surfaced to
// operators instead of silently resolved.
func (s *Service) auditCostLinks() {
	snap := s.Snapshot()

	for _, c := range snap.Costs {
		ref := reconcile.Normalize(c.FreteRef)
		if ref == "" {
			continue
		}

		var matched []string
		seen := make(map[string]struct{})
		for _, f := range snap.Freights {
			if _, dup := seen[f.ID]; dup {
				continue
			}
			if reconcile.IsLinked(c.FreteRef, f.ID, f.Codigo) {
				seen[f.ID] = struct{}{}
				matched = append(matched, f.ID)
			}
		}
		if len(matched) > 1 {
			s.logger.Warn("cost reference matches multiple freights",
				zap.String("cost_id", c.ID),
				zap.String("reference", c.FreteRef),
				zap.Strings("freight_ids", matched))
		}
	}
}
