package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarning)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
)

// Success prints a green check line.
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(SymbolSuccess+" "+fmt.Sprintf(format, args...)))
}

// Failure prints a red cross line.
func Failure(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(SymbolFail+" "+fmt.Sprintf(format, args...)))
}

// Warning prints a yellow warning line.
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warnStyle.Render(SymbolWarning+" "+fmt.Sprintf(format, args...)))
}

// Heading prints a section heading.
func Heading(w io.Writer, text string) {
	fmt.Fprintln(w, headingStyle.Render(text))
}

// KeyValue prints an aligned label/value pair, with the label padded to
// labelWidth characters.
func KeyValue(w io.Writer, label, value string, labelWidth int) {
	for len([]rune(label)) < labelWidth {
		label += " "
	}
	fmt.Fprintln(w, "  "+labelStyle.Render(label)+" "+valueStyle.Render(value))
}

// Item prints a bulleted list line.
func Item(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, "  "+labelStyle.Render(SymbolBullet)+" "+fmt.Sprintf(format, args...))
}
