package models

// Freight represents a single shipment event as delivered by the upstream
// freight API. Monetary and weight fields use FlexFloat because the legacy
// store mixes numeric and string encodings.
type Freight struct {
	ID             string    `json:"id"`
	Codigo         string    `json:"codigo,omitempty"`
	Origem         string    `json:"origem"`
	Destino        string    `json:"destino"`
	Motorista      string    `json:"motorista"`
	Caminhao       string    `json:"caminhao"`
	FazendaID      string    `json:"fazenda_id,omitempty"`
	PesoToneladas  FlexFloat `json:"peso_toneladas"`
	Sacas          FlexFloat `json:"sacas"`
	PrecoTonelada  FlexFloat `json:"preco_tonelada"`
	Receita        FlexFloat `json:"receita"`
	CustoInformado FlexFloat `json:"custo_informado"`
	PagamentoID    string    `json:"pagamento_id,omitempty"`
	Data           string    `json:"data"`
}

// Revenue returns the stored revenue, falling back to weight times unit
// price when the upstream record never materialized the derived field.
func (f Freight) Revenue() float64 {
	if f.Receita > 0 {
		return f.Receita.Float64()
	}
	return f.PesoToneladas.Float64() * f.PrecoTonelada.Float64()
}

// FreightView is a Freight enriched with derived financial fields. Views are
// recomputed from the latest snapshot on demand and never persisted.
type FreightView struct {
	Freight
	DisplayCode   string  `json:"codigo_exibicao"`
	LinkedCosts   float64 `json:"custos_vinculados"`
	EffectiveCost float64 `json:"custo_efetivo"`
	Result        float64 `json:"resultado"`
}
