package agendamento

import (
	"encoding/json"
	"testing"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }
func boolp(b bool) *bool     { return &b }

func TestMedicaoPatchColunas(t *testing.T) {
	t.Run("traduz os campos camelCase para as colunas snake_case", func(t *testing.T) {
		st := StatusRealizado
		p := MedicaoPatch{
			OrderNumber:    str("PED-1"),
			Date:           str("2026-08-01"),
			RequesterName:  str("Ana"),
			Status:         &st,
			ClientName:     str("Cliente"),
			ClientPhone:    str("11 98888-7777"),
			Observations:   str("obs"),
			OrderValue:     f64(1250),
			CommissionRate: f64(0.5),
			CommissionPaid: boolp(true),
		}
		c := p.Colunas()

		esperadas := map[string]interface{}{
			"order_number":    "PED-1",
			"date":            "2026-08-01",
			"requester_name":  "Ana",
			"status":          StatusRealizado,
			"client_name":     "Cliente",
			"client_phone":    "11 98888-7777",
			"observations":    "obs",
			"order_value":     1250.0,
			"commission_rate": 0.5,
			"commission_paid": true,
		}
		if len(c) != len(esperadas) {
			t.Fatalf("esperado %d colunas, veio %d: %v", len(esperadas), len(c), c)
		}
		for col, quer := range esperadas {
			if c[col] != quer {
				t.Fatalf("coluna %s: esperado %v, veio %v", col, quer, c[col])
			}
		}
	})

	t.Run("campos ausentes ficam de fora do patch", func(t *testing.T) {
		p := MedicaoPatch{OrderNumber: str("PED-2")}
		c := p.Colunas()
		if len(c) != 1 {
			t.Fatalf("esperado 1 coluna, veio %d: %v", len(c), c)
		}
		if c["order_number"] != "PED-2" {
			t.Fatalf("order_number: %v", c["order_number"])
		}
	})

	t.Run("endereço vira texto JSON, não bytes", func(t *testing.T) {
		p := MedicaoPatch{Address: &Endereco{Street: "Rua A", Number: "10", District: "Centro", City: "SP"}}
		c := p.Colunas()
		s, ok := c["address"].(string)
		if !ok {
			t.Fatalf("endereço deveria ser string JSON: %T", c["address"])
		}
		var dec Endereco
		if err := json.Unmarshal([]byte(s), &dec); err != nil {
			t.Fatalf("JSON do endereço inválido: %v", err)
		}
		if dec.Street != "Rua A" || dec.City != "SP" {
			t.Fatalf("endereço decodificado: %+v", dec)
		}
	})
}

func TestFiltrarMedicoes(t *testing.T) {
	medicoes := []Medicao{
		{ID: "a", ClientName: "João", RequesterName: "Ana", Status: StatusPendente},
		{ID: "b", ClientName: "Maria", RequesterName: "Bruno", Status: StatusRealizado, OrderNumber: str("PED-7")},
		{ID: "c", ClientName: "José", RequesterName: "Carla", Status: StatusCancelado},
	}

	t.Run("busca sem acentos", func(t *testing.T) {
		got := FiltrarMedicoes(medicoes, "jose", "")
		if len(got) != 1 || got[0].ID != "c" {
			t.Fatalf("esperado só o item c, veio %d itens", len(got))
		}
	})

	t.Run("filtro de status", func(t *testing.T) {
		got := FiltrarMedicoes(medicoes, "", string(StatusRealizado))
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("esperado só o item b, veio %d itens", len(got))
		}
	})

	t.Run("busca por pedido combinada com status", func(t *testing.T) {
		got := FiltrarMedicoes(medicoes, "ped-7", string(StatusRealizado))
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("esperado só o item b, veio %d itens", len(got))
		}
	})

	t.Run("status all passa tudo", func(t *testing.T) {
		got := FiltrarMedicoes(medicoes, "", "all")
		if len(got) != 3 {
			t.Fatalf("esperado 3 itens, veio %d", len(got))
		}
	})
}
