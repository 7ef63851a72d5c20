package render

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dePrinter localizes number formatting (decimal comma, dot grouping) for
// the German locale the documents are issued in. Printers are read-only and
// safe for concurrent use.
var dePrinter = message.NewPrinter(language.German)

// FormatEUR renders a monetary amount with two decimals, locale-correct
// grouping and a euro suffix, e.g. "1.234,50 €". Negative values carry a
// single leading minus, never parentheses.
func FormatEUR(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return dePrinter.Sprintf("%.2f €", f)
}

// dateLayouts are tried in order when parsing incoming date strings.
// Records written by older clients already carry German-formatted dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// FormatDate converts an incoming date string to the German display format
// "02.01.2006". Strings that cannot be parsed pass through unchanged, which
// makes the function idempotent on already-formatted input.
func FormatDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return s
}

var (
	brTagPattern   = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Sanitize strips markup from free text collected through rich-text form
// fields. Break tags become newlines so multi-line notes keep their shape.
func Sanitize(s string) string {
	s = brTagPattern.ReplaceAllString(s, "\n")
	s = htmlTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanLine flattens a possibly multi-line address field into a single line
// with normalized whitespace.
func CleanLine(s string) string {
	s = brTagPattern.ReplaceAllString(s, " ")
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
