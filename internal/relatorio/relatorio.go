// Package relatorio monta os dados do relatório imprimível de comissões.
package relatorio

import (
	"time"

	"github.com/agendadomedidor/api-medidor/internal/comissao"
	"github.com/agendadomedidor/api-medidor/internal/numerico"
)

// Linha é uma entrada da tabela do relatório, já formatada para exibição.
type Linha struct {
	Data          string `json:"data"`
	NumeroPedido  string `json:"numeroPedido"`
	Cliente       string `json:"cliente"`
	Solicitante   string `json:"solicitante"`
	ValorPedido   string `json:"valorPedido"`
	Taxa          string `json:"taxa"`
	ValorComissao string `json:"valorComissao"`
	Pago          bool   `json:"pago"`
}

// Relatorio é o payload completo da impressão: cabeçalho de período,
// linhas, totais e a soma geral das comissões.
type Relatorio struct {
	Periodo        string          `json:"periodo"`
	GeradoEm       string          `json:"geradoEm"`
	Linhas         []Linha         `json:"linhas"`
	Totais         comissao.Totais `json:"totais"`
	TotalComissoes float64         `json:"totalComissoes"`
}

// Gerar filtra os itens pelo intervalo de datas e formata o relatório.
func Gerar(itens []comissao.ItemComissao, dataInicio, dataFim string, agora time.Time) Relatorio {
	filtrados := comissao.Filtrar(itens, comissao.Filtro{
		DataInicio: dataInicio,
		DataFim:    dataFim,
		Pagamento:  comissao.PagamentoTodos,
	})

	linhas := make([]Linha, 0, len(filtrados))
	for _, item := range filtrados {
		linhas = append(linhas, Linha{
			Data:          FormatarData(item.Date),
			NumeroPedido:  item.OrderNumber,
			Cliente:       item.ClientName,
			Solicitante:   item.RequesterName,
			ValorPedido:   numerico.FormatarValor(numerico.ParseNumero(item.OrderValue)),
			Taxa:          item.CommissionRate,
			ValorComissao: numerico.FormatarValor(item.CommissionValue),
			Pago:          item.CommissionPaid,
		})
	}

	totais := comissao.CalcularTotais(filtrados)
	return Relatorio{
		Periodo:        TextoPeriodo(dataInicio, dataFim),
		GeradoEm:       agora.Format("02/01/2006 15:04"),
		Linhas:         linhas,
		Totais:         totais,
		TotalComissoes: totais.ComissoesAPagar + totais.ComissoesPagas,
	}
}

// TextoPeriodo descreve o intervalo do cabeçalho do relatório.
func TextoPeriodo(inicio, fim string) string {
	switch {
	case inicio == "" && fim == "":
		return "Todos os períodos"
	case inicio != "" && fim == "":
		return "A partir de " + FormatarData(inicio)
	case inicio == "" && fim != "":
		return "Até " + FormatarData(fim)
	case inicio == fim:
		return FormatarData(inicio)
	default:
		return FormatarData(inicio) + " a " + FormatarData(fim)
	}
}

// FormatarData converte YYYY-MM-DD para DD/MM/YYYY; datas inválidas viram "N/A".
func FormatarData(data string) string {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
