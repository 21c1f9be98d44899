package models

import "time"

// PeriodSummary aggregates the enriched freight set for one calendar bucket.
// Derived on demand, never the system of record for money.
type PeriodSummary struct {
	Granularity    string             `bson:"granularidade" json:"granularidade"`
	PeriodKey      string             `bson:"periodo" json:"periodo"`
	PeriodLabel    string             `bson:"rotulo" json:"rotulo"`
	Revenue        float64            `bson:"receita" json:"receita"`
	Cost           float64            `bson:"custo" json:"custo"`
	Result         float64            `bson:"resultado" json:"resultado"`
	FreightCount   int                `bson:"qtd_fretes" json:"qtd_fretes"`
	CostByCategory map[string]float64 `bson:"custo_por_categoria" json:"custo_por_categoria"`
}

// ClosingSnapshot is the persisted form of a scheduled period closing.
type ClosingSnapshot struct {
	ID             string        `bson:"_id" json:"id"`
	GeneratedAt    time.Time     `bson:"gerado_em" json:"gerado_em"`
	Summary        PeriodSummary `bson:"resumo" json:"resumo"`
	AvailableCount int           `bson:"fretes_disponiveis" json:"fretes_disponiveis"`
}
