package calendario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/errs"
)

// Handler expõe a grade mensal
type Handler struct {
	Medicoes *agendamento.Repository
}

func NewHandler(medicoes *agendamento.Repository) *Handler {
	return &Handler{Medicoes: medicoes}
}

// Grade trata GET /agendamentos/calendario?ano&mes; sem parâmetros usa o mês atual.
func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)
	agora := time.Now()

	ano := agora.Year()
	mes := agora.Month()
	if v := r.URL.Query().Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return
		}
		ano = n
	}
	if v := r.URL.Query().Get("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "mês inválido", http.StatusBadRequest)
			return
		}
		mes = time.Month(n)
	}

	medicoes, err := h.Medicoes.ListarPorUsuario(userID)
	if err != nil {
		errs.Responder(w, "carregar o calendário", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GerarGrade(ano, mes, medicoes, agora))
}
