package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD) y elimina las marcas diacríticas ("café" -> "cafe").
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	spacesRe  = regexp.MustCompile(`\s+`)
	invalidRe = regexp.MustCompile(`[^a-z0-9\-_]+`)
	hyphensRe = regexp.MustCompile(`\-\-+`)
)

// Make genera un slug apto para URL a partir de un texto libre:
// minúsculas, sin tildes, espacios a guiones, sin caracteres especiales.
// Es idempotente: Make(Make(x)) == Make(x).
func Make(text string) string {
	s, _, err := transform.String(foldTransformer, text)
	if err != nil {
		// Si la transformación falla se sigue con el texto original;
		// los caracteres no ASCII caen en el filtro de abajo.
		s = text
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = spacesRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = hyphensRe.ReplaceAllString(s, "-")
	return s
}
