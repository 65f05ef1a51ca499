package extract

import (
	"regexp"
	"strings"
)

var (
	reScriptStyle = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)\s*>`)
	reLineBreak   = regexp.MustCompile(`(?i)<br\s*/?>`)
	reParaClose   = regexp.MustCompile(`(?i)</p\s*>`)
	reTag         = regexp.MustCompile(`<[^>]+>`)
	reTrailingWS  = regexp.MustCompile(`[ \t]+\n`)
	reBlankRuns   = regexp.MustCompile(`\n{3,}`)
)

// Normalize reduces an HTML document to readable plain text: script and
// style blocks go away entirely, <br> and paragraph closings become
// newlines, remaining tags are stripped, &nbsp; becomes a space, and
// runs of three or more newlines collapse to two. Idempotent, never
// fails; empty in, empty out.
func Normalize(markup string) string {
	txt := reScriptStyle.ReplaceAllString(markup, " ")
	txt = reLineBreak.ReplaceAllString(txt, "\n")
	txt = reParaClose.ReplaceAllString(txt, "\n")
	txt = reTag.ReplaceAllString(txt, " ")
	txt = strings.ReplaceAll(txt, "&nbsp;", " ")
	txt = reTrailingWS.ReplaceAllString(txt, "\n")
	txt = reBlankRuns.ReplaceAllString(txt, "\n\n")
	return strings.TrimSpace(txt)
}
