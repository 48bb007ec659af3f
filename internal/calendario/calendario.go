// Package calendario gera a grade mensal da agenda: semanas completas de
// domingo a sábado, com células vazias nas bordas do mês.
package calendario

import (
	"fmt"
	"time"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
)

// Dia é uma célula da grade. Células de preenchimento (fora do mês)
// têm NoMes=false e nenhuma medição.
type Dia struct {
	Data     string   `json:"data,omitempty"` // YYYY-MM-DD, vazio em células de preenchimento
	Dia      int      `json:"dia,omitempty"`
	NoMes    bool     `json:"noMes"`
	Hoje     bool     `json:"hoje"`
	Medicoes []string `json:"medicoes,omitempty"` // IDs das medições do dia
}

// Grade é o mês completo em semanas de sete dias.
type Grade struct {
	Ano     int     `json:"ano"`
	Mes     int     `json:"mes"`
	Semanas [][]Dia `json:"semanas"`
}

// GerarGrade monta a grade de ano/mês com as medições posicionadas por data.
func GerarGrade(ano int, mes time.Month, medicoes []agendamento.Medicao, hoje time.Time) Grade {
	primeiroDia := time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	totalDias := primeiroDia.AddDate(0, 1, -1).Day()
	inicioSemana := int(primeiroDia.Weekday()) // domingo = 0

	porData := make(map[string][]string)
	for _, m := range medicoes {
		porData[m.Date] = append(porData[m.Date], m.ID)
	}
	hojeStr := hoje.Format("2006-01-02")

	celulas := make([]Dia, 0, 42)
	for i := 0; i < inicioSemana; i++ {
		celulas = append(celulas, Dia{})
	}
	for dia := 1; dia <= totalDias; dia++ {
		data := fmt.Sprintf("%04d-%02d-%02d", ano, int(mes), dia)
		celulas = append(celulas, Dia{
			Data:     data,
			Dia:      dia,
			NoMes:    true,
			Hoje:     data == hojeStr,
			Medicoes: porData[data],
		})
	}
	for len(celulas)%7 != 0 {
		celulas = append(celulas, Dia{})
	}

	semanas := make([][]Dia, 0, len(celulas)/7)
	for i := 0; i < len(celulas); i += 7 {
		semanas = append(semanas, celulas[i:i+7])
	}

	return Grade{Ano: ano, Mes: int(mes), Semanas: semanas}
}
