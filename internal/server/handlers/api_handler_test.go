package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/server/handlers"
	"github.com/transgraos/fretelog/internal/server/router"
	"github.com/transgraos/fretelog/internal/service/ledger"
	"github.com/transgraos/fretelog/pkg/clients/freteapi"
)

type stubAPI struct {
	freights []models.Freight
	costs    []models.Cost
	payments []models.PaymentBatch
}

func (s *stubAPI) FetchFreightPage(_ context.Context, page, pageSize int) (*freteapi.FreightPage, error) {
	return &freteapi.FreightPage{Data: s.freights, Page: page, TotalPages: 1, TotalRecords: len(s.freights)}, nil
}

func (s *stubAPI) FetchAllFreights(context.Context) ([]models.Freight, error) {
	return s.freights, nil
}

func (s *stubAPI) FetchCosts(context.Context) ([]models.Cost, error) { return s.costs, nil }

func (s *stubAPI) FetchPayments(context.Context) ([]models.PaymentBatch, error) {
	return s.payments, nil
}

func (s *stubAPI) FetchFarms(context.Context) ([]models.FarmStock, error) { return nil, nil }

type stubRepo struct {
	snapshots []models.ClosingSnapshot
}

func (r *stubRepo) SaveClosingSnapshot(_ context.Context, snapshot models.ClosingSnapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *stubRepo) ListClosingSnapshots(context.Context, int64) ([]models.ClosingSnapshot, error) {
	return r.snapshots, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	api := &stubAPI{
		freights: []models.Freight{
			{ID: "f1", Codigo: "FRETE-2026-001", Origem: "Fazenda Boa Vista", Destino: "Rondonópolis", Motorista: "Carlos", Receita: 15000, CustoInformado: 3000, Data: "2026-01-10"},
		},
		costs: []models.Cost{
			{ID: "c1", FreteRef: "FRETE-2026-001", Categoria: "Combustível", Valor: 1200, Data: "2026-01-10"},
		},
	}

	svc := ledger.NewService(api, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo := &stubRepo{snapshots: []models.ClosingSnapshot{{ID: "s1", GeneratedAt: time.Now()}}}
	engine := router.New(handlers.NewAPIHandler(svc, repo, nil), nil)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	server := newTestServer(t)

	var summary models.PeriodSummary
	getJSON(t, server.URL+"/resumo?granularidade=mensal&periodo=2026-01", &summary)

	if summary.PeriodKey != "2026-01" || summary.PeriodLabel != "Janeiro 2026" {
		t.Fatalf("summary period = %q (%q)", summary.PeriodKey, summary.PeriodLabel)
	}
	if summary.Revenue != 15000 || summary.Cost != 1200 || summary.Result != 13800 {
		t.Fatalf("summary totals = %v/%v/%v", summary.Revenue, summary.Cost, summary.Result)
	}
}

func TestPeriodsEndpoint(t *testing.T) {
	server := newTestServer(t)

	var payload struct {
		Periodos []ledger.PeriodOption `json:"periodos"`
	}
	getJSON(t, server.URL+"/periodos?granularidade=trimestral", &payload)

	if len(payload.Periodos) != 1 || payload.Periodos[0].Key != "2026-T1" {
		t.Fatalf("periodos = %v, want single 2026-T1", payload.Periodos)
	}
	if payload.Periodos[0].Label != "1º Trimestre 2026" {
		t.Fatalf("label = %q", payload.Periodos[0].Label)
	}
}

func TestAvailableFreightsEndpoint(t *testing.T) {
	server := newTestServer(t)

	var payload struct {
		Fretes []models.Freight `json:"fretes"`
	}
	getJSON(t, server.URL+"/fretes/disponiveis", &payload)

	if len(payload.Fretes) != 1 || payload.Fretes[0].ID != "f1" {
		t.Fatalf("fretes = %v, want only f1", payload.Fretes)
	}
}

func TestClosingsEndpoint(t *testing.T) {
	server := newTestServer(t)

	var payload struct {
		Fechamentos []models.ClosingSnapshot `json:"fechamentos"`
	}
	getJSON(t, server.URL+"/fechamentos", &payload)

	if len(payload.Fechamentos) != 1 || payload.Fechamentos[0].ID != "s1" {
		t.Fatalf("fechamentos = %v, want stub snapshot", payload.Fechamentos)
	}
}
