// Package availability decides which freights may still enter a new payment
// batch. Evaluated fresh from the full freight and batch collections on
// every call; nothing here mutates its inputs.
package availability

import (
	"strings"

	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/reconcile"
)

// paidStatuses covers the upstream value plus its English variant seen in
// older records.
func isPaidStatus(status string) bool {
	switch reconcile.Normalize(status) {
	case "pago", "paid":
		return true
	}
	return false
}

// PaidFreightIDs collects the identifiers covered by batches whose status is
// paid, keyed for O(1) membership tests.
func PaidFreightIDs(batches []models.PaymentBatch) map[string]struct{} {
	paid := make(map[string]struct{})
	for _, b := range batches {
		if !isPaidStatus(b.Status) {
			continue
		}
		for _, id := range b.IncludedFreightIDs() {
			paid[id] = struct{}{}
		}
	}
	return paid
}

// IsValid guards against partially-synced or garbage freight records: a
// record counts only with a non-empty identifier and at least one of origin,
// destination, truck or driver name filled in.
func IsValid(f models.Freight) bool {
	if strings.TrimSpace(f.ID) == "" {
		return false
	}
	return strings.TrimSpace(f.Origem) != "" ||
		strings.TrimSpace(f.Destino) != "" ||
		strings.TrimSpace(f.Caminhao) != "" ||
		strings.TrimSpace(f.Motorista) != ""
}

// ComputeAvailable returns the freights eligible for a new payment batch:
// valid, not covered by any paid batch, deduplicated by identifier keeping
// the first occurrence, relative input order preserved.
func ComputeAvailable(freights []models.Freight, batches []models.PaymentBatch) []models.Freight {
	paid := PaidFreightIDs(batches)
	seen := make(map[string]struct{}, len(freights))

	available := make([]models.Freight, 0, len(freights))
	for _, f := range freights {
		if !IsValid(f) {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		if _, isPaid := paid[f.ID]; isPaid {
			continue
		}
		available = append(available, f)
	}
	return available
}
