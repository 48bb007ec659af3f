package utils

import "testing"

func TestRemoverAcentos(t *testing.T) {
	casos := map[string]string{
		"João":        "Joao",
		"José Antônio": "Jose Antonio",
		"medição":     "medicao",
		"sem acento":  "sem acento",
		"":            "",
	}
	for entrada, quer := range casos {
		if got := RemoverAcentos(entrada); got != quer {
			t.Fatalf("RemoverAcentos(%q) = %q, esperado %q", entrada, got, quer)
		}
	}
}
