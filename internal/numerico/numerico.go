// Package numerico converte valores no formato numérico brasileiro
// (vírgula decimal, ponto de milhar) de e para números de máquina.
package numerico

import (
	"strconv"
	"strings"
)

// ParseNumero converte um texto como "1.250,50" em 1250.5.
// Entrada vazia ou inválida retorna 0; nunca falha.
func ParseNumero(s string) float64 {
	if v := ParseNumeroPtr(s); v != nil {
		return *v
	}
	return 0
}

// ParseNumeroPtr é a variante usada na fronteira de persistência:
// entrada vazia ou inválida vira nil, para gravar NULL em vez de 0.
func ParseNumeroPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	limpo := strings.ReplaceAll(s, ".", "")
	// Mantém apenas a primeira vírgula como separador decimal; o resto
	// entra como dígitos da fração ("1,2,3" -> 1.23).
	if i := strings.Index(limpo, ","); i >= 0 {
		limpo = limpo[:i] + "." + strings.ReplaceAll(limpo[i+1:], ",", "")
	}
	f, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatarValor formata um valor monetário com duas casas decimais
// e vírgula como separador (1250 -> "1250,00").
func FormatarValor(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// FormatarTaxa formata um percentual sem precisão fixa (0.5 -> "0,5").
func FormatarTaxa(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// SanearValor normaliza o texto digitado em um campo de moeda: mantém
// dígitos e uma única vírgula e trunca a fração em duas casas.
func SanearValor(s string) string {
	limpo := sanear(s)
	if i := strings.Index(limpo, ","); i >= 0 && len(limpo)-i-1 > 2 {
		limpo = limpo[:i+3]
	}
	return limpo
}

// SanearTaxa normaliza o texto digitado em um campo de percentual;
// igual ao campo de moeda, mas sem truncar casas decimais.
func SanearTaxa(s string) string {
	return sanear(s)
}

func sanear(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == ',' {
			b.WriteRune(r)
		}
	}
	limpo := b.String()
	// Vírgulas extras são coladas na fração da primeira.
	if i := strings.Index(limpo, ","); i >= 0 {
		limpo = limpo[:i+1] + strings.ReplaceAll(limpo[i+1:], ",", "")
	}
	return limpo
}
