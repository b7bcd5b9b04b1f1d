package render

import (
	"strings"

	"github.com/Drolfothesgnir/drafty/drafty"
)

var markupDelimiters = map[string]string{
	drafty.StyleBold:          "*",
	drafty.StyleItalic:        "_",
	drafty.StyleStrikethrough: "~",
	drafty.StyleCode:          "`",
}

// MarkupFormatter converts a document back into the inline markup.
// Entities found in the text are kept as their text, out-of-band entities are dropped.
type MarkupFormatter struct{}

func (MarkupFormatter) Apply(tag string, _ map[string]any, content drafty.Content[string]) string {
	inner := joinContent(content)

	if tag == drafty.StyleLineBreak {
		return "\n"
	}

	if d, ok := markupDelimiters[tag]; ok {
		return d + inner + d
	}

	return inner
}

// Markup converts the document back into the inline markup.
func Markup(doc *drafty.Document) string {
	return drafty.Format[string](doc, MarkupFormatter{})
}

func joinContent(content drafty.Content[string]) string {
	switch content.Kind {
	case drafty.ContentText:
		return content.Text
	case drafty.ContentNode:
		return content.Node
	case drafty.ContentNodes:
		return strings.Join(content.Nodes, "")
	}
	return ""
}
