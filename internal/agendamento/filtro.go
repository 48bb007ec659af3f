package agendamento

import (
	"strings"

	"github.com/agendadomedidor/api-medidor/internal/utils"
)

// FiltrarMedicoes aplica a busca textual e o filtro de status da agenda.
// A busca é insensível a maiúsculas e acentos sobre cliente e solicitante;
// o número do pedido compara sem normalizar acentos.
func FiltrarMedicoes(medicoes []Medicao, busca string, status string) []Medicao {
	termo := utils.RemoverAcentos(strings.ToLower(busca))
	buscaMin := strings.ToLower(busca)

	out := make([]Medicao, 0, len(medicoes))
	for _, m := range medicoes {
		casaBusca := strings.Contains(utils.RemoverAcentos(strings.ToLower(m.ClientName)), termo) ||
			strings.Contains(utils.RemoverAcentos(strings.ToLower(m.RequesterName)), termo) ||
			(m.OrderNumber != nil && strings.Contains(strings.ToLower(*m.OrderNumber), buscaMin))
		casaStatus := status == "" || status == "all" || string(m.Status) == status
		if casaBusca && casaStatus {
			out = append(out, m)
		}
	}
	return out
}
