package auth

import (
	"encoding/json"
	"net/http"

	"github.com/agendadomedidor/api-medidor/internal/errs"
	"github.com/agendadomedidor/api-medidor/internal/usuario"
	"github.com/agendadomedidor/api-medidor/internal/utils"
)

// Handler expõe cadastro, login, logout e consulta de sessão.
type Handler struct {
	Usuarios *usuario.Repository
}

func NewHandler(repo *usuario.Repository) *Handler {
	return &Handler{Usuarios: repo}
}

type cadastroRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type usuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Cadastro trata POST /auth/cadastro
func (h *Handler) Cadastro(w http.ResponseWriter, r *http.Request) {
	var req cadastroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Email == "" {
		http.Error(w, "nome e e-mail são obrigatórios", http.StatusBadRequest)
		return
	}
	if len(req.Senha) < 6 {
		http.Error(w, "A senha deve ter no mínimo 6 caracteres.", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := usuario.Usuario{Nome: req.Nome, Email: req.Email, Senha: hash}
	if err := h.Usuarios.Salvar(&u); err != nil {
		if errs.Classificar(err).Categoria == errs.CategoriaDuplicado {
			http.Error(w, "Este e-mail já está cadastrado.", http.StatusConflict)
			return
		}
		errs.Responder(w, "criar a conta", err)
		return
	}

	token, err := GerarToken(u.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"usuario": usuarioResponse{ID: u.ID, Nome: u.Nome, Email: u.Email},
	})
}

// Login trata POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Usuarios.BuscarPorEmail(req.Email)
	if err != nil || !utils.VerificarSenha(u.Senha, req.Senha) {
		http.Error(w, errs.Mensagem(errs.CategoriaCredenciaisInvalidas), http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(u.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"usuario": usuarioResponse{ID: u.ID, Nome: u.Nome, Email: u.Email},
	})
}

// Logout trata POST /auth/logout. Tokens são stateless; o cliente descarta o seu.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Você saiu da sua conta."})
}

// Sessao trata GET /auth/sessao e devolve o usuário do token atual.
func (h *Handler) Sessao(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(UsuarioIDKey).(string)
	u, err := h.Usuarios.BuscarPorID(userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarioResponse{ID: u.ID, Nome: u.Nome, Email: u.Email})
}
