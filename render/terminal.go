package render

import (
	"os"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/charmbracelet/lipgloss"
)

// Colors holds the terminal colors of the entities, as ANSI codes ("36") or hex ("#ff00aa").
type Colors struct {
	Link    string
	Mention string
	Hashtag string
	Code    string
}

// DefaultColors are used for empty fields of Colors.
var DefaultColors = Colors{
	Link:    "39",
	Mention: "212",
	Hashtag: "36",
	Code:    "244",
}

// TerminalFormatter renders documents with ANSI styles.
type TerminalFormatter struct {
	styles map[string]lipgloss.Style
}

// NewTerminalFormatter creates styles for the renderer, which decides on the color profile.
func NewTerminalFormatter(r *lipgloss.Renderer, c Colors) *TerminalFormatter {
	c = withDefaults(c)

	return &TerminalFormatter{
		styles: map[string]lipgloss.Style{
			drafty.StyleBold:          r.NewStyle().Bold(true),
			drafty.StyleItalic:        r.NewStyle().Italic(true),
			drafty.StyleStrikethrough: r.NewStyle().Strikethrough(true),
			drafty.StyleCode:          r.NewStyle().Foreground(lipgloss.Color(c.Code)),
			drafty.KindLink:           r.NewStyle().Underline(true).Foreground(lipgloss.Color(c.Link)),
			drafty.KindMention:        r.NewStyle().Foreground(lipgloss.Color(c.Mention)),
			drafty.KindHashtag:        r.NewStyle().Foreground(lipgloss.Color(c.Hashtag)),
			drafty.KindImage:          r.NewStyle().Faint(true),
			drafty.KindFile:           r.NewStyle().Faint(true),
			drafty.KindButton:         r.NewStyle().Reverse(true),
		},
	}
}

func (f *TerminalFormatter) Apply(tag string, data map[string]any, content drafty.Content[string]) string {
	inner := joinContent(content)

	switch tag {
	case "":
		return inner

	case drafty.StyleLineBreak:
		return "\n"

	case drafty.StyleHidden:
		return ""

	case drafty.KindLink:
		out := f.styles[tag].Render(inner)
		if url := str(data["url"]); url != "" && url != inner {
			out += " (" + url + ")"
		}
		return out

	case drafty.KindImage:
		return f.styles[tag].Render("[image " + nameOr(data, "untitled") + "]")

	case drafty.KindFile:
		out := f.styles[tag].Render("[file " + nameOr(data, "attachment") + "]")
		if content.Kind == drafty.ContentNone {
			return out + "\n"
		}
		return out

	case drafty.KindButton:
		return f.styles[tag].Render("[ " + inner + " ]")
	}

	if st, ok := f.styles[tag]; ok {
		return st.Render(inner)
	}
	return inner
}

// Terminal renders the document for the standard output.
func Terminal(doc *drafty.Document, colors Colors) string {
	f := NewTerminalFormatter(lipgloss.NewRenderer(os.Stdout), colors)
	return drafty.Format[string](doc, f)
}

func nameOr(data map[string]any, fallback string) string {
	if name := str(data["name"]); name != "" {
		return name
	}
	return fallback
}

func withDefaults(c Colors) Colors {
	if c.Link == "" {
		c.Link = DefaultColors.Link
	}
	if c.Mention == "" {
		c.Mention = DefaultColors.Mention
	}
	if c.Hashtag == "" {
		c.Hashtag = DefaultColors.Hashtag
	}
	if c.Code == "" {
		c.Code = DefaultColors.Code
	}
	return c
}
