package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/errs"
)

// Handler expõe o resumo do painel
type Handler struct {
	Medicoes *agendamento.Repository
}

func NewHandler(medicoes *agendamento.Repository) *Handler {
	return &Handler{Medicoes: medicoes}
}

// Resumo trata GET /dashboard/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)

	medicoes, err := h.Medicoes.ListarPorUsuario(userID)
	if err != nil {
		errs.Responder(w, "carregar o resumo", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GerarResumo(medicoes, time.Now()))
}
