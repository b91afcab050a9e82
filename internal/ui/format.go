package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders a row count with thousands separators (12345 -> "12,345")
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
