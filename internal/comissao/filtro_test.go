package comissao

import (
	"math"
	"testing"

	"github.com/agendadomedidor/api-medidor/internal/numerico"
)

func item(id, data, cliente, solicitante, pedido, valor string, pago bool) ItemComissao {
	it := ItemComissao{
		ID:             id,
		Date:           data,
		ClientName:     cliente,
		RequesterName:  solicitante,
		OrderNumber:    pedido,
		OrderValue:     valor,
		CommissionRate: "0,5",
		CommissionPaid: pago,
	}
	// comissão derivada coerente com os textos
	it.CommissionValue = numerico.ParseNumero(valor) * 0.005
	return it
}

func conjunto() []ItemComissao {
	return []ItemComissao{
		item("a", "2026-08-01", "João da Silva", "Ana", "PED-1", "1000,00", false),
		item("b", "2026-08-15", "Maria José", "Bruno", "PED-2", "2000,00", true),
		item("c", "2026-09-01", "Antônio", "Carla", "", "", false), // sem valor de pedido
		item("d", "2026-07-20", "Célia", "Diego", "PED-4", "500,00", false),
	}
}

func TestFiltrar(t *testing.T) {
	t.Run("busca ignora acentos e caixa", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Busca: "joao", Pagamento: PagamentoTodos})
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("esperado só o item a, veio %d itens", len(got))
		}
	})

	t.Run("busca casa solicitante", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Busca: "bruno"})
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("esperado só o item b, veio %d itens", len(got))
		}
	})

	t.Run("busca por número de pedido", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Busca: "ped-4"})
		if len(got) != 1 || got[0].ID != "d" {
			t.Fatalf("esperado só o item d, veio %d itens", len(got))
		}
	})

	t.Run("intervalo de datas é inclusivo", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{DataInicio: "2026-08-01", DataFim: "2026-08-15"})
		if len(got) != 2 {
			t.Fatalf("esperado 2 itens, veio %d", len(got))
		}
	})

	t.Run("limite vazio é aberto", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{DataInicio: "2026-08-15"})
		if len(got) != 2 { // b e c
			t.Fatalf("esperado 2 itens, veio %d", len(got))
		}
	})

	t.Run("pago exige comissão paga", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Pagamento: PagamentoPago})
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("esperado só o item b, veio %d itens", len(got))
		}
	})

	t.Run("a pagar exclui item sem valor de pedido", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Pagamento: PagamentoAPagar})
		for _, it := range got {
			if it.ID == "c" {
				t.Fatal("item sem valor de pedido não entra em 'a pagar'")
			}
		}
		if len(got) != 2 { // a e d
			t.Fatalf("esperado 2 itens, veio %d", len(got))
		}
	})

	t.Run("todos inclui item sem valor de pedido", func(t *testing.T) {
		got := Filtrar(conjunto(), Filtro{Pagamento: PagamentoTodos})
		if len(got) != 4 {
			t.Fatalf("esperado 4 itens, veio %d", len(got))
		}
	})

	t.Run("predicados combinam por conjunção", func(t *testing.T) {
		f := Filtro{Busca: "jo", DataInicio: "2026-08-01", DataFim: "2026-08-31", Pagamento: PagamentoAPagar}
		combinado := Filtrar(conjunto(), f)

		// interseção dos três predicados aplicados um a um
		parcial := Filtrar(conjunto(), Filtro{Busca: f.Busca})
		parcial = Filtrar(parcial, Filtro{DataInicio: f.DataInicio, DataFim: f.DataFim})
		parcial = Filtrar(parcial, Filtro{Pagamento: f.Pagamento})

		if len(combinado) != len(parcial) {
			t.Fatalf("conjunção divergente: %d != %d", len(combinado), len(parcial))
		}
		for i := range combinado {
			if combinado[i].ID != parcial[i].ID {
				t.Fatalf("itens divergentes na posição %d", i)
			}
		}
	})
}

func TestCalcularTotais(t *testing.T) {
	itens := Filtrar(conjunto(), Filtro{Pagamento: PagamentoTodos})
	totais := CalcularTotais(itens)

	if totais.Pedidos != 3500 {
		t.Fatalf("total de pedidos: esperado 3500, veio %v", totais.Pedidos)
	}

	// pagas + a pagar cobre exatamente a soma das comissões do conjunto
	var soma float64
	for _, it := range itens {
		soma += it.CommissionValue
	}
	if diff := math.Abs(totais.ComissoesPagas + totais.ComissoesAPagar - soma); diff > 1e-9 {
		t.Fatalf("agregados inconsistentes: %v + %v != %v",
			totais.ComissoesPagas, totais.ComissoesAPagar, soma)
	}
	if totais.ComissoesPagas != 10 { // 2000 × 0,5%
		t.Fatalf("comissões pagas: esperado 10, veio %v", totais.ComissoesPagas)
	}

	t.Run("totais seguem o conjunto filtrado", func(t *testing.T) {
		filtrados := Filtrar(conjunto(), Filtro{Pagamento: PagamentoAPagar})
		tt := CalcularTotais(filtrados)
		if tt.Pedidos != 1500 { // a (1000) + d (500)
			t.Fatalf("esperado 1500, veio %v", tt.Pedidos)
		}
		if tt.ComissoesPagas != 0 {
			t.Fatalf("conjunto 'a pagar' não tem comissão paga: %v", tt.ComissoesPagas)
		}
	})
}
