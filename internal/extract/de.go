package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Heuristics for German voting-rights notifications ("Stimmrechtsmitteilung").
// These filings are free text and vary in layout, so every extractor here
// degrades to an empty result instead of failing.

var (
	reIssuer  = regexp.MustCompile(`Stimmrechte\s*:\s*(.+?)(?:\s+-\s+|\s+\||$)`)
	rePercent = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)
	reLegal   = regexp.MustCompile(`Juristische Person\s*:\s*(.+)`)
	reNatural = regexp.MustCompile(`Natürliche Person\s*:\s*(.+)`)
)

// IssuerFromTitle extracts the issuer from a feed title of the common
// shape "EQS-Stimmrechte: <issuer> - <rest>" (or "... | <rest>").
func IssuerFromTitle(title string) string {
	m := reIssuer.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Percentages holds the new and previous total-holding figures found in
// a notification body. Nil means the figure was absent, which is not the
// same as a holding of zero.
type Percentages struct {
	New      *float64
	Previous *float64
}

// PercentFromText scans the normalized document line by line. The line
// starting with "neu " carries the new holding, the one starting with
// "letzte " the previous one. Each such line commonly lists several
// percentage columns (instruments, voting rights, total); the last one
// is the total, so that is the one taken. Decimal comma is normalized
// to a point.
func PercentFromText(text string) Percentages {
	var p Percentages
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(l, "neu ") {
			p.New = lastPercentInLine(line)
		}
		if strings.HasPrefix(l, "letzte ") {
			p.Previous = lastPercentInLine(line)
		}
	}
	return p
}

// lastPercentInLine returns the final "<number> %" token of a line,
// e.g. "neu 3,04 % 0,00 % 3,04 % 800.000.000" yields 3.04.
func lastPercentInLine(line string) *float64 {
	matches := rePercent.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	s := strings.ReplaceAll(matches[len(matches)-1][1], ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// NotifierFromText finds the notifying party: a "Juristische Person:"
// line wins over a "Natürliche Person:" line when both are present.
func NotifierFromText(text string) string {
	if m := reLegal.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reNatural.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
