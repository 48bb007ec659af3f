// Package errs traduz erros do banco e de autenticação em um conjunto
// fechado de categorias, cada uma com mensagem e status HTTP próprios.
package errs

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Categoria identifica a origem do erro na fronteira com o backend.
type Categoria int

const (
	CategoriaInterna Categoria = iota
	CategoriaValidacao
	CategoriaNaoEncontrado
	CategoriaDuplicado
	CategoriaChaveEstrangeira
	CategoriaRestricaoCheck
	CategoriaPermissaoNegada
	CategoriaEsquemaAusente
	CategoriaCredenciaisInvalidas
	CategoriaSessaoExpirada
	CategoriaConexao
)

// Erro carrega a categoria junto da causa original.
type Erro struct {
	Categoria Categoria
	Causa     error
}

func (e *Erro) Error() string {
	if e.Causa != nil {
		return e.Causa.Error()
	}
	return Mensagem(e.Categoria)
}

func (e *Erro) Unwrap() error { return e.Causa }

// Novo cria um erro já classificado, para validações locais.
func Novo(c Categoria, causa error) *Erro {
	return &Erro{Categoria: c, Causa: causa}
}

// Classificar mapeia um erro bruto para a categoria correspondente.
func Classificar(err error) *Erro {
	var jaClassificado *Erro
	if errors.As(err, &jaClassificado) {
		return jaClassificado
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Erro{Categoria: CategoriaNaoEncontrado, Causa: err}
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return &Erro{Categoria: CategoriaSessaoExpirada, Causa: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &Erro{Categoria: CategoriaDuplicado, Causa: err}
		case "23503":
			return &Erro{Categoria: CategoriaChaveEstrangeira, Causa: err}
		case "23514":
			return &Erro{Categoria: CategoriaRestricaoCheck, Causa: err}
		case "42501":
			return &Erro{Categoria: CategoriaPermissaoNegada, Causa: err}
		case "42P01":
			return &Erro{Categoria: CategoriaEsquemaAusente, Causa: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &Erro{Categoria: CategoriaConexao, Causa: err}
	}

	return &Erro{Categoria: CategoriaInterna, Causa: err}
}

// Mensagem devolve o texto exibido ao usuário para cada categoria.
func Mensagem(c Categoria) string {
	switch c {
	case CategoriaValidacao:
		return "Os dados fornecidos são inválidos. Por favor, verifique os campos."
	case CategoriaNaoEncontrado:
		return "Registro não encontrado."
	case CategoriaDuplicado:
		return "Já existe um registro com estes dados. Verifique se há duplicatas."
	case CategoriaChaveEstrangeira:
		return "Não foi possível realizar a operação devido a dados relacionados."
	case CategoriaRestricaoCheck:
		return "Os dados fornecidos são inválidos. Por favor, verifique os campos."
	case CategoriaPermissaoNegada:
		return "Você não tem permissão para realizar esta ação."
	case CategoriaEsquemaAusente:
		return "A tabela do banco de dados não foi encontrada. Execute o script de configuração."
	case CategoriaCredenciaisInvalidas:
		return "E-mail ou senha inválidos."
	case CategoriaSessaoExpirada:
		return "Sua sessão expirou. Faça login novamente."
	case CategoriaConexao:
		return "Falha de conexão. Verifique sua internet e tente novamente."
	default:
		return "Ocorreu um erro desconhecido."
	}
}

// Status devolve o código HTTP de cada categoria.
func Status(c Categoria) int {
	switch c {
	case CategoriaValidacao, CategoriaRestricaoCheck:
		return http.StatusBadRequest
	case CategoriaNaoEncontrado:
		return http.StatusNotFound
	case CategoriaDuplicado:
		return http.StatusConflict
	case CategoriaChaveEstrangeira:
		return http.StatusConflict
	case CategoriaPermissaoNegada:
		return http.StatusForbidden
	case CategoriaCredenciaisInvalidas, CategoriaSessaoExpirada:
		return http.StatusUnauthorized
	case CategoriaConexao:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Responder escreve a resposta de erro no formato "Erro ao <contexto>: <mensagem>".
// Validações locais e erros internos mantêm a mensagem original da causa.
func Responder(w http.ResponseWriter, contexto string, err error) {
	e := Classificar(err)
	msg := Mensagem(e.Categoria)
	if e.Causa != nil && (e.Categoria == CategoriaInterna || e.Categoria == CategoriaValidacao) {
		msg = e.Causa.Error()
	}
	http.Error(w, "Erro ao "+contexto+": "+msg, Status(e.Categoria))
}
