// Package paging resolves the dual pagination strategy: when no filter is
// active the server's page and total-pages are authoritative, but as soon as
// any filter applies, the single server page can no longer be sliced
// consistently and pagination is recomputed over the fully-loaded filtered
// collection. The strategy is an explicit tagged variant decided once per
// query construction, not inferred from scattered filter flags.
package paging

// Strategy is the pagination decision for one query.
type Strategy struct {
	server          bool
	serverTotalPage int
	fullCount       int
}

// ServerPaged trusts the upstream pagination envelope: the caller already
// fetched exactly the requested page.
func ServerPaged(totalPages int) Strategy {
	if totalPages < 0 {
		totalPages = 0
	}
	return Strategy{server: true, serverTotalPage: totalPages}
}

// ClientPaged re-paginates a fully-loaded, already-filtered collection of
// the given size locally.
func ClientPaged(filteredCount int) Strategy {
	if filteredCount < 0 {
		filteredCount = 0
	}
	return Strategy{fullCount: filteredCount}
}

// Resolution carries the effective page count and, for client paging, the
// half-open slice bounds into the filtered collection.
type Resolution struct {
	TotalPages int
	// SliceLocal tells the caller whether Start/End apply; under server
	// paging the fetched page is already the slice.
	SliceLocal bool
	Start, End int
}

// Resolve computes the resolution for a 1-based page of the given size.
func (s Strategy) Resolve(page, pageSize int) Resolution {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	if s.server {
		return Resolution{TotalPages: s.serverTotalPage}
	}

	totalPages := (s.fullCount + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > s.fullCount {
		start = s.fullCount
	}
	end := start + pageSize
	if end > s.fullCount {
		end = s.fullCount
	}

	return Resolution{TotalPages: totalPages, SliceLocal: true, Start: start, End: end}
}

// NextPage resets the current page to 1 whenever filtering toggles on or
// off; inside a stable mode the page is kept.
func NextPage(wasFiltering, nowFiltering bool, current int) int {
	if wasFiltering != nowFiltering || current < 1 {
		return 1
	}
	return current
}
