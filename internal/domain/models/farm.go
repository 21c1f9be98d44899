package models

// FarmStock describes an origin inventory location feeding freights.
type FarmStock struct {
	ID                 string    `json:"id"`
	Nome               string    `json:"nome"`
	Estado             string    `json:"estado"`
	ColheitaFinalizada bool      `json:"colheita_finalizada"`
	SacasDisponiveis   FlexFloat `json:"sacas_disponiveis,omitempty"`
	ToneladasEstimadas FlexFloat `json:"toneladas_estimadas,omitempty"`
}
