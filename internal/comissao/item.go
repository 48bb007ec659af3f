// Package comissao deriva, filtra e reconcilia os itens de comissão a
// partir das medições realizadas.
package comissao

import (
	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/numerico"
)

// TaxaPadrao é a taxa de comissão (em %) usada quando a medição não tem taxa.
const TaxaPadrao = 0.5

// ItemComissao é a projeção editável de uma medição realizada. Os campos
// numéricos ficam como texto no formato pt-BR para preservar exatamente o
// que o usuário digita; ValorComissao é sempre derivado deles.
type ItemComissao struct {
	ID            string               `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	Date          string               `json:"date"`
	RequesterName string               `json:"requesterName"`
	Status        agendamento.Status   `json:"status"`
	ClientName    string               `json:"clientName"`
	ClientPhone   string               `json:"clientPhone"`
	Address       agendamento.Endereco `json:"address"`
	Observations  string               `json:"observations,omitempty"`

	OrderValue      string  `json:"orderValue"`     // texto editável, ex. "1250,00"
	CommissionRate  string  `json:"commissionRate"` // texto editável, ex. "0,5"
	CommissionValue float64 `json:"commissionValue"`
	CommissionPaid  bool    `json:"commissionPaid"`
}

// NovoItemComissao projeta uma medição em item de comissão. Taxa ausente
// assume TaxaPadrao; valor ausente assume 0 no cálculo e campo vazio no texto.
func NovoItemComissao(m agendamento.Medicao) ItemComissao {
	taxa := TaxaPadrao
	if m.CommissionRate != nil {
		taxa = *m.CommissionRate
	}
	valor := 0.0
	if m.OrderValue != nil {
		valor = *m.OrderValue
	}

	item := ItemComissao{
		ID:              m.ID,
		Date:            m.Date,
		RequesterName:   m.RequesterName,
		Status:          m.Status,
		ClientName:      m.ClientName,
		ClientPhone:     m.ClientPhone,
		Address:         m.Address,
		CommissionRate:  numerico.FormatarTaxa(taxa),
		CommissionValue: valor * (taxa / 100),
		CommissionPaid:  m.CommissionPaid,
	}
	if m.OrderNumber != nil {
		item.OrderNumber = *m.OrderNumber
	}
	if m.Observations != nil {
		item.Observations = *m.Observations
	}
	if m.OrderValue != nil {
		item.OrderValue = numerico.FormatarValor(*m.OrderValue)
	}
	return item
}

// Projetar monta o conjunto de trabalho: somente medições Realizadas entram.
func Projetar(medicoes []agendamento.Medicao) []ItemComissao {
	itens := make([]ItemComissao, 0, len(medicoes))
	for _, m := range medicoes {
		if m.Status != agendamento.StatusRealizado {
			continue
		}
		itens = append(itens, NovoItemComissao(m))
	}
	return itens
}
