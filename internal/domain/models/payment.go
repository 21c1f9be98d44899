package models

import "strings"

// Payment batch statuses as stored by the upstream API.
const (
	PaymentStatusPending    = "pendente"
	PaymentStatusProcessing = "processando"
	PaymentStatusPaid       = "pago"
	PaymentStatusCancelled  = "cancelado"
)

// PaymentBatch is a driver payment covering one or more freights. The
// included freight ids are persisted upstream as a single comma-delimited
// string, entries possibly padded with whitespace.
type PaymentBatch struct {
	ID              string    `json:"id"`
	MotoristaID     string    `json:"motorista_id"`
	Status          string    `json:"status"`
	FretesIncluidos string    `json:"fretes_incluidos"`
	PesoTotal       FlexFloat `json:"peso_total"`
	ValorUnitario   FlexFloat `json:"valor_unitario"`
	ValorTotal      FlexFloat `json:"valor_total"`
	DataPagamento   string    `json:"data_pagamento"`
}

// IncludedFreightIDs splits the delimited included-freight string, trimming
// each entry and dropping empty segments left by trailing commas.
func (p PaymentBatch) IncludedFreightIDs() []string {
	if strings.TrimSpace(p.FretesIncluidos) == "" {
		return nil
	}

	parts := strings.Split(p.FretesIncluidos, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
