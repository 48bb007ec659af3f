package comissao

import (
	"strings"

	"github.com/agendadomedidor/api-medidor/internal/numerico"
	"github.com/agendadomedidor/api-medidor/internal/utils"
)

// StatusPagamento filtra por situação do pagamento da comissão.
type StatusPagamento string

const (
	PagamentoTodos  StatusPagamento = "all"
	PagamentoPago   StatusPagamento = "paid"
	PagamentoAPagar StatusPagamento = "unpaid"
)

// Filtro reúne os três predicados aplicados em conjunção sobre os itens.
type Filtro struct {
	Busca      string
	DataInicio string // YYYY-MM-DD, vazio = sem limite
	DataFim    string
	Pagamento  StatusPagamento
}

// Totais são os agregados exibidos sobre o conjunto filtrado.
type Totais struct {
	Pedidos         float64 `json:"pedidos"`
	ComissoesAPagar float64 `json:"comissoesAPagar"`
	ComissoesPagas  float64 `json:"comissoesPagas"`
}

// Filtrar aplica busca textual, intervalo de datas e status de pagamento.
func Filtrar(itens []ItemComissao, f Filtro) []ItemComissao {
	out := make([]ItemComissao, 0, len(itens))
	for _, item := range itens {
		if casaTexto(item, f.Busca) && casaData(item, f.DataInicio, f.DataFim) && casaPagamento(item, f.Pagamento) {
			out = append(out, item)
		}
	}
	return out
}

// casaTexto busca por cliente ou solicitante sem diferenciar acentos, e
// pelo número do pedido sem normalização (campo alfanumérico).
func casaTexto(item ItemComissao, busca string) bool {
	if busca == "" {
		return true
	}
	termo := utils.RemoverAcentos(strings.ToLower(busca))
	if strings.Contains(utils.RemoverAcentos(strings.ToLower(item.ClientName)), termo) ||
		strings.Contains(utils.RemoverAcentos(strings.ToLower(item.RequesterName)), termo) {
		return true
	}
	return item.OrderNumber != "" &&
		strings.Contains(strings.ToLower(item.OrderNumber), strings.ToLower(busca))
}

// casaData usa comparação lexical: datas YYYY-MM-DD ordenam como no calendário.
func casaData(item ItemComissao, inicio, fim string) bool {
	if inicio != "" && item.Date < inicio {
		return false
	}
	if fim != "" && item.Date > fim {
		return false
	}
	return true
}

func casaPagamento(item ItemComissao, p StatusPagamento) bool {
	switch p {
	case PagamentoPago:
		return item.CommissionPaid
	case PagamentoAPagar:
		// Sem valor de pedido o item não é "a pagar": só aparece em Todos.
		return !item.CommissionPaid && numerico.ParseNumero(item.OrderValue) > 0
	default:
		return true
	}
}

// CalcularTotais soma o conjunto recebido; deve ser chamado sobre o conjunto
// já filtrado para os totais acompanharem os filtros ativos.
func CalcularTotais(itens []ItemComissao) Totais {
	var t Totais
	for _, item := range itens {
		t.Pedidos += numerico.ParseNumero(item.OrderValue)
		if item.CommissionPaid {
			t.ComissoesPagas += item.CommissionValue
		} else {
			t.ComissoesAPagar += item.CommissionValue
		}
	}
	return t
}
