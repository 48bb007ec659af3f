package utils

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var removedorAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoverAcentos reduz caracteres acentuados à forma base ("João" -> "Joao"),
// usado nas buscas insensíveis a acentuação.
func RemoverAcentos(s string) string {
	out, _, err := transform.String(removedorAcentos, s)
	if err != nil {
		return s
	}
	return out
}
