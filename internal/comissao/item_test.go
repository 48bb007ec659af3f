package comissao

import (
	"testing"

	"github.com/agendadomedidor/api-medidor/internal/agendamento"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func medicaoRealizada(id string) agendamento.Medicao {
	return agendamento.Medicao{
		ID:            id,
		Date:          "2026-08-10",
		RequesterName: "José",
		Status:        agendamento.StatusRealizado,
		ClientName:    "Cliente",
		ClientPhone:   "11 99999-0000",
	}
}

func TestNovoItemComissao(t *testing.T) {
	t.Run("taxa ausente assume 0,5 e valor formatado com duas casas", func(t *testing.T) {
		m := medicaoRealizada("m1")
		m.OrderValue = f64(1250.00)

		item := NovoItemComissao(m)
		if item.CommissionRate != "0,5" {
			t.Fatalf("taxa padrão: esperado %q, veio %q", "0,5", item.CommissionRate)
		}
		if item.OrderValue != "1250,00" {
			t.Fatalf("valor do pedido: esperado %q, veio %q", "1250,00", item.OrderValue)
		}
		if item.CommissionValue != 6.25 {
			t.Fatalf("valor da comissão: esperado 6.25, veio %v", item.CommissionValue)
		}
	})

	t.Run("valor ausente assume zero e texto vazio", func(t *testing.T) {
		item := NovoItemComissao(medicaoRealizada("m2"))
		if item.OrderValue != "" {
			t.Fatalf("esperado texto vazio, veio %q", item.OrderValue)
		}
		if item.CommissionValue != 0 {
			t.Fatalf("esperado comissão zero, veio %v", item.CommissionValue)
		}
	})

	t.Run("taxa e valor presentes", func(t *testing.T) {
		m := medicaoRealizada("m3")
		m.OrderValue = f64(2000)
		m.CommissionRate = f64(1.5)
		m.OrderNumber = str("PED-42")

		item := NovoItemComissao(m)
		if item.CommissionRate != "1,5" || item.OrderValue != "2000,00" {
			t.Fatalf("projeção inesperada: %q / %q", item.CommissionRate, item.OrderValue)
		}
		if item.CommissionValue != 30 {
			t.Fatalf("2000 × 1,5%% = 30, veio %v", item.CommissionValue)
		}
		if item.OrderNumber != "PED-42" {
			t.Fatalf("número do pedido: %q", item.OrderNumber)
		}
	})
}

func TestProjetar(t *testing.T) {
	pendente := medicaoRealizada("p1")
	pendente.Status = agendamento.StatusPendente
	pendente.OrderValue = f64(9999) // valor alto não importa: status manda

	cancelada := medicaoRealizada("c1")
	cancelada.Status = agendamento.StatusCancelado

	realizada := medicaoRealizada("r1")

	itens := Projetar([]agendamento.Medicao{pendente, cancelada, realizada})
	if len(itens) != 1 {
		t.Fatalf("apenas medições realizadas entram: esperado 1, veio %d", len(itens))
	}
	if itens[0].ID != "r1" {
		t.Fatalf("item inesperado: %s", itens[0].ID)
	}
}
