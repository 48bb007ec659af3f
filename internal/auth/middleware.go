package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/agendadomedidor/api-medidor/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

// UsuarioIDKey guarda o ID do usuário autenticado no contexto da requisição.
const UsuarioIDKey ctxKey = "usuarioID"

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				http.Error(w, errs.Mensagem(errs.CategoriaSessaoExpirada), http.StatusUnauthorized)
				return
			}
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
