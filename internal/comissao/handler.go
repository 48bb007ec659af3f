package comissao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/errs"
	"github.com/agendadomedidor/api-medidor/internal/notificacao"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de comissões
type Handler struct {
	Medicoes    *agendamento.Repository
	Notificador *notificacao.Notificador
}

func NewHandler(medicoes *agendamento.Repository, notificador *notificacao.Notificador) *Handler {
	return &Handler{Medicoes: medicoes, Notificador: notificador}
}

type listaResponse struct {
	Itens  []ItemComissao `json:"itens"`
	Totais Totais         `json:"totais"`
}

// Listar trata GET /comissoes?busca&dataInicio&dataFim&pagamento.
// Os totais acompanham o conjunto filtrado, não o completo.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	itens, ok := h.projetarTudo(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := Filtro{
		Busca:      q.Get("busca"),
		DataInicio: q.Get("dataInicio"),
		DataFim:    q.Get("dataFim"),
		Pagamento:  StatusPagamento(q.Get("pagamento")),
	}
	filtrados := Filtrar(itens, f)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listaResponse{Itens: filtrados, Totais: CalcularTotais(filtrados)})
}

// Editar trata PATCH /comissoes/{id}: um campo por edição. O estado local é
// recalculado primeiro e só o item alterado segue para o banco.
func (h *Handler) Editar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload struct {
		Campo Campo  `json:"campo"`
		Valor string `json:"valor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	itens, ok := h.projetarTudo(w, r)
	if !ok {
		return
	}

	_, alterado, err := AplicarEdicao(itens, id, payload.Campo, payload.Valor)
	if err != nil {
		if errors.Is(err, ErrItemNaoEncontrado) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Medicoes.AtualizarCampos(id, Patch(*alterado)); err != nil {
		errs.Responder(w, "salvar os dados de comissão", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alterado)
}

// AtualizarPagamento trata PATCH /comissoes/{id}/pagamento.
func (h *Handler) AtualizarPagamento(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Pago bool `json:"pago"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	item, ok := h.projetarUm(w, r)
	if !ok {
		return
	}

	atualizado, err := DefinirPagamento(*item, payload.Pago)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Medicoes.AtualizarCampos(atualizado.ID, map[string]interface{}{
		"commission_paid": atualizado.CommissionPaid,
	}); err != nil {
		errs.Responder(w, "atualizar o status do pagamento", err)
		return
	}

	if payload.Pago {
		go h.Notificador.AlertaComissaoPaga(atualizado.ID, atualizado.ClientName, atualizado.CommissionValue)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// RemoverDadosComissao trata DELETE /comissoes/{id}: limpa valor e taxa,
// preservando o agendamento.
func (h *Handler) RemoverDadosComissao(w http.ResponseWriter, r *http.Request) {
	item, ok := h.projetarUm(w, r)
	if !ok {
		return
	}

	limpo := RemoverDados(*item)
	if err := h.Medicoes.AtualizarCampos(limpo.ID, Patch(limpo)); err != nil {
		errs.Responder(w, "remover os dados de comissão", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(limpo)
}

// projetarTudo carrega as medições realizadas do usuário e projeta os itens.
func (h *Handler) projetarTudo(w http.ResponseWriter, r *http.Request) ([]ItemComissao, bool) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)
	medicoes, err := h.Medicoes.ListarRealizadasPorUsuario(userID)
	if err != nil {
		errs.Responder(w, "carregar as comissões", err)
		return nil, false
	}
	return Projetar(medicoes), true
}

// projetarUm carrega uma medição do usuário e valida que está no conjunto
// de comissões (status Realizado).
func (h *Handler) projetarUm(w http.ResponseWriter, r *http.Request) (*ItemComissao, bool) {
	userID, _ := r.Context().Value(auth.UsuarioIDKey).(string)
	id := mux.Vars(r)["id"]

	m, err := h.Medicoes.BuscarPorID(id)
	if err != nil {
		http.Error(w, "item de comissão não encontrado", http.StatusNotFound)
		return nil, false
	}
	if m.UserID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil, false
	}
	if m.Status != agendamento.StatusRealizado {
		http.Error(w, "item de comissão não encontrado", http.StatusNotFound)
		return nil, false
	}
	item := NovoItemComissao(*m)
	return &item, true
}
