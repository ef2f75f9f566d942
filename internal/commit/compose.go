package commit

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// MaxLineLength is the cap applied to every line of the composed message.
const MaxLineLength = 100

// Answers holds one run's worth of prompt responses. Scope, Body, Breaking
// and Issues may be empty; empty fields omit their section entirely.
type Answers struct {
	Type     Type
	Scope    string
	Subject  string
	Body     string
	Breaking string
	Issues   string
}

// Compose builds the final commit message from a. The header is truncated to
// MaxLineLength characters; body and footer sections are word-wrapped at the
// same width.
func Compose(a Answers) string {
	d := a.Type.Details()

	scope := ""
	if a.Scope != "" {
		scope = "(" + a.Scope + ")"
	}
	header := truncate(fmt.Sprintf("%s%s: %s %s", a.Type, scope, d.Emoji, a.Subject), MaxLineLength)

	body := ""
	if a.Body != "" {
		body = wordwrap.String("\n\n"+a.Body, MaxLineLength)
	}

	footer := ""
	if a.Breaking != "" || a.Issues != "" {
		var b strings.Builder
		b.WriteString("\n")
		if a.Breaking != "" {
			b.WriteString("\nBREAKING CHANGE: " + a.Breaking)
		}
		if a.Issues != "" {
			b.WriteString("\nRelated issues: " + a.Issues)
		}
		footer = wordwrap.String(b.String(), MaxLineLength)
	}

	return header + body + footer
}

// truncate caps s at max runes. Counting runes rather than terminal cells
// keeps the cap aligned with what the user typed, emoji included.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
