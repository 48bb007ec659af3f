package agendamento

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/errs"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de agendamentos
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

var statusValidos = map[Status]bool{
	StatusPendente:  true,
	StatusRealizado: true,
	StatusCancelado: true,
}

func validar(m *Medicao) error {
	if m.Date == "" || m.RequesterName == "" || m.ClientName == "" ||
		m.Address.Street == "" || m.Address.City == "" {
		return errs.Novo(errs.CategoriaValidacao, errors.New("preencha todos os campos obrigatórios"))
	}
	if !statusValidos[m.Status] {
		return errs.Novo(errs.CategoriaValidacao, errors.New("status inválido"))
	}
	// Comissão paga exige valor de pedido presente e maior que zero.
	if m.CommissionPaid && (m.OrderValue == nil || *m.OrderValue <= 0) {
		return errs.Novo(errs.CategoriaValidacao, errors.New("informe o valor do pedido antes de marcar a comissão como paga"))
	}
	return nil
}

// Criar trata POST /agendamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)

	var m Medicao
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Status == "" {
		m.Status = StatusPendente
	}
	if err := validar(&m); err != nil {
		errs.Responder(w, "criar o agendamento", err)
		return
	}

	m.ID = ""
	m.UserID = userID
	if err := h.Repo.Criar(&m); err != nil {
		errs.Responder(w, "criar o agendamento", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// Listar trata GET /agendamentos; aceita query params `busca` e `status`.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)

	medicoes, err := h.Repo.ListarPorUsuario(userID)
	if err != nil {
		errs.Responder(w, "carregar os agendamentos", err)
		return
	}

	busca := r.URL.Query().Get("busca")
	status := r.URL.Query().Get("status")
	if busca != "" || (status != "" && status != "all") {
		medicoes = FiltrarMedicoes(medicoes, busca, status)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(medicoes)
}

// BuscarPorID trata GET /agendamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	m, ok := h.carregar(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// Atualizar trata PUT /agendamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	m, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var dados Medicao
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dados.ID = m.ID
	dados.UserID = m.UserID
	dados.CreatedAt = m.CreatedAt
	if dados.Status == "" {
		dados.Status = m.Status
	}
	if err := validar(&dados); err != nil {
		errs.Responder(w, "atualizar o agendamento", err)
		return
	}

	if err := h.Repo.Atualizar(&dados); err != nil {
		errs.Responder(w, "atualizar o agendamento", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dados)
}

// AtualizarParcial trata PATCH /agendamentos/{id}; grava só os campos enviados.
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	m, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var patch MedicaoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !statusValidos[*patch.Status] {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if patch.CommissionPaid != nil && *patch.CommissionPaid {
		valor := m.OrderValue
		if patch.OrderValue != nil {
			valor = patch.OrderValue
		}
		if valor == nil || *valor <= 0 {
			http.Error(w, "informe o valor do pedido antes de marcar a comissão como paga", http.StatusBadRequest)
			return
		}
	}

	colunas := patch.Colunas()
	if len(colunas) == 0 {
		http.Error(w, "nenhum campo para atualizar", http.StatusBadRequest)
		return
	}
	if err := h.Repo.AtualizarCampos(m.ID, colunas); err != nil {
		errs.Responder(w, "atualizar o agendamento", err)
		return
	}

	atualizado, err := h.Repo.BuscarPorID(m.ID)
	if err != nil {
		errs.Responder(w, "carregar o agendamento", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// AtualizarStatus trata PATCH /agendamentos/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	m, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var payload struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !statusValidos[payload.Status] {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.AtualizarStatus(m.ID, payload.Status); err != nil {
		errs.Responder(w, "atualizar o status", err)
		return
	}
	m.Status = payload.Status
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// Deletar trata DELETE /agendamentos/{id}; exclusão imediata, sem soft delete.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	m, ok := h.carregar(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Deletar(m.ID); err != nil {
		errs.Responder(w, "excluir o agendamento", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Compartilhado trata GET /agendamentos/compartilhado?measurementId=<id>.
// Rota pública de leitura: falhas são apenas logadas e viram 404.
func (h *Handler) Compartilhado(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("measurementId")
	if id == "" {
		http.Error(w, "measurementId ausente", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(id)
	if err != nil {
		log.Printf("erro ao buscar item compartilhado %s: %v", id, err)
		http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// carregar centraliza a busca por ID e a checagem de dono do registro.
func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (*Medicao, bool) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)
	id := mux.Vars(r)["id"]

	m, err := h.Repo.BuscarPorID(id)
	if err != nil {
		http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		return nil, false
	}
	if m.UserID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil, false
	}
	return m, true
}
