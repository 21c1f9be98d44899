package models

// Cost is an incidental expense referencing a freight by id or by
// human-readable code. The reference is not a guaranteed foreign key;
// resolution happens at read time through the reconcile package.
type Cost struct {
	ID                string    `json:"id"`
	FreteRef          string    `json:"frete_id"`
	Categoria         string    `json:"categoria"`
	Valor             FlexFloat `json:"valor"`
	Data              string    `json:"data"`
	PossuiComprovante bool      `json:"possui_comprovante"`
	Litros            FlexFloat `json:"litros,omitempty"`
	TipoCombustivel   string    `json:"tipo_combustivel,omitempty"`
}
