package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	noAlfanumerico = regexp.MustCompile(`[^a-z0-9]+`)
	guionesBorde   = regexp.MustCompile(`(^-|-$)`)
)

// De genera un identificador URL-safe a partir de un nombre: minúsculas,
// sin tildes ni diacríticos, con guiones como separador.
// "Logitech México" -> "logitech-mexico".
func De(nombre string) string {
	s := strings.ToLower(strings.TrimSpace(nombre))

	// NFD + eliminación de marcas diacríticas (á -> a, ñ -> n)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if limpio, _, err := transform.String(t, s); err == nil {
		s = limpio
	}

	s = noAlfanumerico.ReplaceAllString(s, "-")
	s = guionesBorde.ReplaceAllString(s, "")
	return s
}
