package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
	"github.com/agendadomedidor/api-medidor/internal/auth"
	"github.com/agendadomedidor/api-medidor/internal/calendario"
	"github.com/agendadomedidor/api-medidor/internal/comissao"
	"github.com/agendadomedidor/api-medidor/internal/dashboard"
	"github.com/agendadomedidor/api-medidor/internal/notificacao"
	"github.com/agendadomedidor/api-medidor/internal/relatorio"
	"github.com/agendadomedidor/api-medidor/internal/usuario"
	utilsdb "github.com/agendadomedidor/api-medidor/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}
	if err := auth.CarregarSegredo(); err != nil {
		log.Fatal(err)
	}

	db, err := utilsdb.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&agendamento.Medicao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	medicaoRepo := agendamento.NewRepository(db)
	authHandler := auth.NewHandler(usuario.NewRepository(db))
	agendamentoHandler := agendamento.NewHandler(medicaoRepo)
	comissaoHandler := comissao.NewHandler(medicaoRepo, notificacao.NewNotificador())
	relatorioHandler := relatorio.NewHandler(medicaoRepo)
	dashboardHandler := dashboard.NewHandler(medicaoRepo)
	calendarioHandler := calendario.NewHandler(medicaoRepo)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/auth/cadastro", authHandler.Cadastro).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	// Link compartilhado: leitura pública de um único agendamento
	r.HandleFunc("/agendamentos/compartilhado", agendamentoHandler.Compartilhado).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/sessao", authHandler.Sessao).Methods("GET")

	// Rotas de agendamentos
	api.HandleFunc("/agendamentos", agendamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/agendamentos", agendamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/agendamentos/calendario", calendarioHandler.Grade).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/agendamentos/{id}/status", agendamentoHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.Deletar).Methods("DELETE")

	// Rotas de comissões
	api.HandleFunc("/comissoes", comissaoHandler.Listar).Methods("GET")
	api.HandleFunc("/comissoes/relatorio", relatorioHandler.Gerar).Methods("GET")
	api.HandleFunc("/comissoes/{id}", comissaoHandler.Editar).Methods("PATCH")
	api.HandleFunc("/comissoes/{id}/pagamento", comissaoHandler.AtualizarPagamento).Methods("PATCH")
	api.HandleFunc("/comissoes/{id}", comissaoHandler.RemoverDadosComissao).Methods("DELETE")

	// Dashboard
	api.HandleFunc("/dashboard/resumo", dashboardHandler.Resumo).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
