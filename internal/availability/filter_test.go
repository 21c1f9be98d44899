package availability

import (
	"testing"

	"github.com/transgraos/fretelog/internal/domain/models"
)

func freight(id, origem string) models.Freight {
	return models.Freight{ID: id, Origem: origem, Destino: "Porto", Motorista: "João"}
}

func TestComputeAvailableExcludesPaid(t *testing.T) {
	t.Parallel()

	freights := []models.Freight{
		freight("1", "Fazenda A"),
		freight("2", "Fazenda A"),
		freight("3", "Fazenda B"),
		freight("4", "Fazenda B"),
		freight("5", "Fazenda C"),
	}
	batches := []models.PaymentBatch{
		{ID: "p1", Status: "pago", FretesIncluidos: "1, 2 ,3"},
	}

	got := ComputeAvailable(freights, batches)
	if len(got) != 2 || got[0].ID != "4" || got[1].ID != "5" {
		t.Fatalf("available = %v, want freights 4 and 5", ids(got))
	}
}

func TestComputeAvailableIgnoresUnpaidBatches(t *testing.T) {
	t.Parallel()

	freights := []models.Freight{freight("1", "A"), freight("2", "B")}
	batches := []models.PaymentBatch{
		{ID: "p1", Status: "pendente", FretesIncluidos: "1"},
		{ID: "p2", Status: "processando", FretesIncluidos: "2"},
		{ID: "p3", Status: "cancelado", FretesIncluidos: "1,2"},
	}

	if got := ComputeAvailable(freights, batches); len(got) != 2 {
		t.Fatalf("available = %v, want both freights", ids(got))
	}
}

func TestComputeAvailableMalformedIncludedIDs(t *testing.T) {
	t.Parallel()

	freights := []models.Freight{freight("1", "A"), freight("2", "B")}
	batches := []models.PaymentBatch{
		{ID: "p1", Status: "pago", FretesIncluidos: " 1 ,, , "},
	}

	got := ComputeAvailable(freights, batches)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("available = %v, want only freight 2", ids(got))
	}
}

func TestComputeAvailableDropsInvalidRecords(t *testing.T) {
	t.Parallel()

	freights := []models.Freight{
		{ID: "", Origem: "Fazenda A"},
		{ID: "ghost"},
		{ID: "ok", Caminhao: "ABC-1234"},
	}

	got := ComputeAvailable(freights, nil)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("available = %v, want only %q", ids(got), "ok")
	}
}

func TestComputeAvailableDeduplicates(t *testing.T) {
	t.Parallel()

	first := freight("1", "Fazenda A")
	dup := freight("1", "Fazenda B")

	got := ComputeAvailable([]models.Freight{first, dup, freight("2", "C")}, nil)
	if len(got) != 2 {
		t.Fatalf("available = %v, want 2 unique freights", ids(got))
	}
	if got[0].Origem != "Fazenda A" {
		t.Fatalf("dedup kept %q, want first occurrence", got[0].Origem)
	}
}

func TestComputeAvailableDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	freights := []models.Freight{freight("1", "A"), freight("1", "B"), freight("2", "C")}
	batches := []models.PaymentBatch{{ID: "p", Status: "pago", FretesIncluidos: "2"}}

	_ = ComputeAvailable(freights, batches)

	if freights[1].Origem != "B" || batches[0].FretesIncluidos != "2" {
		t.Fatal("inputs were mutated")
	}
}

func ids(fs []models.Freight) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	return out
}
