package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/comissao"
	"github.com/agendadomedidor/api-medidor/internal/errs"
)

// Handler expõe o relatório de comissões
type Handler struct {
	Medicoes *agendamento.Repository
}

func NewHandler(medicoes *agendamento.Repository) *Handler {
	return &Handler{Medicoes: medicoes}
}

// Gerar trata GET /comissoes/relatorio?dataInicio&dataFim
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)

	medicoes, err := h.Medicoes.ListarRealizadasPorUsuario(userID)
	if err != nil {
		errs.Responder(w, "gerar o relatório", err)
		return
	}

	q := r.URL.Query()
	rel := Gerar(comissao.Projetar(medicoes), q.Get("dataInicio"), q.Get("dataFim"), time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rel)
}
