// Package dashboard resume a atividade do usuário para a tela inicial.
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
)

// Resumo reúne os indicadores exibidos no painel.
type Resumo struct {
	TotalPendentes   int                   `json:"totalPendentes"`
	RealizadasNoMes  int                   `json:"realizadasNoMes"`
	TotalNoMes       int                   `json:"totalNoMes"`    // exclui canceladas
	TaxaConclusao    int                   `json:"taxaConclusao"` // percentual arredondado
	DetalheConclusao string                `json:"detalheConclusao"`
	Proximas         []agendamento.Medicao `json:"proximas"`
}

// GerarResumo calcula os indicadores do mês corrente de `agora` e as
// próximas cinco medições pendentes a partir de hoje.
func GerarResumo(medicoes []agendamento.Medicao, agora time.Time) Resumo {
	mesAtual := agora.Format("2006-01")
	hoje := agora.Format("2006-01-02")

	var pendentes, realizadasNoMes, totalNoMes int
	proximas := make([]agendamento.Medicao, 0)

	for _, m := range medicoes {
		if m.Status == agendamento.StatusPendente {
			pendentes++
			if m.Date >= hoje {
				proximas = append(proximas, m)
			}
		}
		if len(m.Date) >= 7 && m.Date[:7] == mesAtual {
			if m.Status != agendamento.StatusCancelado {
				totalNoMes++
			}
			if m.Status == agendamento.StatusRealizado {
				realizadasNoMes++
			}
		}
	}

	taxa := 0
	if totalNoMes > 0 {
		taxa = int(math.Round(float64(realizadasNoMes) / float64(totalNoMes) * 100))
	}

	sort.Slice(proximas, func(i, j int) bool { return proximas[i].Date < proximas[j].Date })
	if len(proximas) > 5 {
		proximas = proximas[:5]
	}

	return Resumo{
		TotalPendentes:   pendentes,
		RealizadasNoMes:  realizadasNoMes,
		TotalNoMes:       totalNoMes,
		TaxaConclusao:    taxa,
		DetalheConclusao: fmt.Sprintf("%d de %d concluído(s)", realizadasNoMes, totalNoMes),
		Proximas:         proximas,
	}
}
