package finance

import (
	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/reconcile"
)

// CostsForFreight sums the amount of every cost entry linked to the freight
// identified by id/code. Returns 0 when no entry is linked.
func CostsForFreight(costs []models.Cost, freightID, freightCode string) float64 {
	var total float64
	for _, c := range costs {
		if reconcile.IsLinked(c.FreteRef, freightID, freightCode) {
			total += c.Valor.Float64()
		}
	}
	return total
}

// EffectiveCost picks the authoritative cost for a freight. Once at least
// one itemized cost is linked, the itemized sum fully replaces the coarse
// stored fallback; it is never added on top of it.
func EffectiveCost(freight models.Freight, linkedCostsSum float64) float64 {
	if linkedCostsSum > 0 {
		return linkedCostsSum
	}
	return freight.CustoInformado.Float64()
}

// Result is the freight margin: revenue minus effective cost.
func Result(freight models.Freight, linkedCostsSum float64) float64 {
	return freight.Revenue() - EffectiveCost(freight, linkedCostsSum)
}

// Enrich builds the derived view of one freight against the full cost set.
func Enrich(freight models.Freight, costs []models.Cost) models.FreightView {
	linked := CostsForFreight(costs, freight.ID, freight.Codigo)

	code := freight.Codigo
	if code == "" {
		code = reconcile.FallbackCode(freight.ID)
	}

	return models.FreightView{
		Freight:       freight,
		DisplayCode:   code,
		LinkedCosts:   linked,
		EffectiveCost: EffectiveCost(freight, linked),
		Result:        Result(freight, linked),
	}
}

// EnrichAll derives views for a whole freight collection. A nil cost slice
// is fine: every freight then degrades to its stored fallback cost, and the
// views converge once costs arrive and the caller recomputes.
func EnrichAll(freights []models.Freight, costs []models.Cost) []models.FreightView {
	views := make([]models.FreightView, 0, len(freights))
	for _, f := range freights {
		views = append(views, Enrich(f, costs))
	}
	return views
}

// SumCostsByCategory aggregates cost amounts per category in a single pass.
// Every category of the closed set is present in the result, zero-valued
// when nothing matched.
func SumCostsByCategory(costs []models.Cost) map[Category]float64 {
	totals := make(map[Category]float64, len(Categories()))
	for _, cat := range Categories() {
		totals[cat] = 0
	}
	for _, c := range costs {
		totals[Categorize(c.Categoria)] += c.Valor.Float64()
	}
	return totals
}

// SumResults totals revenue, effective cost and result over enriched views.
func SumResults(views []models.FreightView) (revenue, cost, result float64) {
	for _, v := range views {
		revenue += v.Revenue()
		cost += v.EffectiveCost
		result += v.Result
	}
	return revenue, cost, result
}
