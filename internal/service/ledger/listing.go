package ledger

import (
	"context"
	"strings"

	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/finance"
	"github.com/transgraos/fretelog/internal/paging"
	"github.com/transgraos/fretelog/internal/period"
	"github.com/transgraos/fretelog/internal/reconcile"
)

// ListQuery describes one freight-listing request.
type ListQuery struct {
	Search      string
	Category    string
	Granularity period.Granularity
	Period      string
	Page        int
	PageSize    int
	// WasFiltering carries the caller's previous filtering state so a
	// transition into or out of filtering resets the page to 1. Nil means
	// unknown, page kept as requested.
	WasFiltering *bool
}

// ListResult is one resolved page of enriched freights.
type ListResult struct {
	Items        []models.FreightView `json:"itens"`
	Page         int                  `json:"pagina"`
	TotalPages   int                  `json:"total_paginas"`
	FilterActive bool                 `json:"filtro_ativo"`
	Period       PeriodOption         `json:"periodo"`
}

// List resolves a freight listing. Without an active filter the server page
// is fetched and its envelope trusted; with any filter active the fully
// loaded collection is filtered and re-paginated locally, since one page of
// unfiltered server order cannot be sliced consistently.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.PageSize < 1 {
		q.PageSize = 20
	}

	sel := s.Resolve(q.Granularity, q.Period)
	active := strings.TrimSpace(q.Search) != "" ||
		strings.TrimSpace(q.Category) != "" ||
		sel.Key != period.DefaultPeriod(q.Granularity, s.now())

	page := q.Page
	if q.WasFiltering != nil {
		page = paging.NextPage(*q.WasFiltering, active, page)
	}
	if page < 1 {
		page = 1
	}

	result := &ListResult{
		Page:         page,
		FilterActive: active,
		Period:       PeriodOption{Key: sel.Key, Label: sel.Label()},
	}

	if !active {
		fetched, err := s.api.FetchFreightPage(ctx, page, q.PageSize)
		if err != nil {
			return nil, err
		}

		snap := s.Snapshot()
		result.Items = finance.EnrichAll(fetched.Data, snap.Costs)
		result.TotalPages = paging.ServerPaged(fetched.TotalPages).Resolve(page, q.PageSize).TotalPages
		return result, nil
	}

	filtered := s.filteredViews(q, sel)
	res := paging.ClientPaged(len(filtered)).Resolve(page, q.PageSize)
	result.Items = filtered[res.Start:res.End]
	result.TotalPages = res.TotalPages
	return result, nil
}

func (s *Service) filteredViews(q ListQuery, sel period.Selection) []models.FreightView {
	views := s.Views()
	snap := s.Snapshot()
	search := reconcile.Normalize(q.Search)
	category := strings.TrimSpace(q.Category)

	filtered := make([]models.FreightView, 0, len(views))
	for _, view := range views {
		if period.BucketKeyOf(view.Data, q.Granularity) != sel.Key {
			continue
		}
		if search != "" && !matchesSearch(view, search) {
			continue
		}
		if category != "" && !hasLinkedCostInCategory(view, snap.Costs, finance.Categorize(category)) {
			continue
		}
		filtered = append(filtered, view)
	}
	return filtered
}

// matchesSearch tests normalized containment over the fields operators
// actually search by.
func matchesSearch(view models.FreightView, normalizedSearch string) bool {
	for _, field := range []string{view.DisplayCode, view.Codigo, view.ID, view.Origem, view.Destino, view.Motorista, view.Caminhao} {
		if field == "" {
			continue
		}
		if strings.Contains(reconcile.Normalize(field), normalizedSearch) {
			return true
		}
	}
	return false
}

func hasLinkedCostInCategory(view models.FreightView, costs []models.Cost, category finance.Category) bool {
	for _, c := range costs {
		if finance.Categorize(c.Categoria) != category {
			continue
		}
		if reconcile.IsLinked(c.FreteRef, view.ID, view.Codigo) {
			return true
		}
	}
	return false
}
