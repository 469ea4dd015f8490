package receipt

import (
	"strings"
	"unicode/utf8"
)

// Larguras máximas de texto por contexto de renderização.
const (
	WrapWidthDocument = 38 // prosa no documento vectorial
	WrapWidthThermal  = 32 // linha completa no documento térmico
)

// Wrap quebra o texto em linhas de no máximo maxWidth caracteres (runes),
// acumulando palavras de forma greedy. Uma palavra que por si só exceda
// maxWidth é partida em pedaços de maxWidth em vez de transbordar.
// Devolve [text] inalterado se já couber.
func Wrap(text string, maxWidth int) []string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			chunks := splitEvery(word, maxWidth)
			lines = append(lines, chunks[:len(chunks)-1]...)
			current = chunks[len(chunks)-1]
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitEvery parte s em pedaços de no máximo n runes.
func splitEvery(s string, n int) []string {
	var parts []string
	runes := []rune(s)
	for len(runes) > n {
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	parts = append(parts, string(runes))
	return parts
}
