// Package render provides concrete formatters for drafty documents: HTML,
// terminal output and the inline markup itself.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Drolfothesgnir/drafty/drafty"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatText     = "text"
	FormatMarkup   = "markup"
	FormatTerminal = "term"
)

// ErrUnknownFormat is returned by Render for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Render converts the document into the requested output format.
// Colors are used by the terminal format only.
func Render(doc *drafty.Document, format string, colors Colors) (string, error) {
	switch format {
	case FormatHTML:
		return HTML(doc)
	case FormatText:
		return drafty.ToPlainText(doc), nil
	case FormatMarkup:
		return Markup(doc), nil
	case FormatTerminal:
		return Terminal(doc, colors), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// str returns v if it's a string, or its decimal representation if it's a number.
func str(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// number accepts both native ints and JSON numbers.
func number(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
