package render

import (
	"strconv"
	"strings"

	"github.com/Drolfothesgnir/drafty/drafty"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlTag describes how a drafty tag is represented in HTML.
type htmlTag struct {
	name   string
	isVoid bool
}

var htmlTags = map[string]htmlTag{
	drafty.StyleBold:          {name: "b"},
	drafty.StyleItalic:        {name: "i"},
	drafty.StyleStrikethrough: {name: "del"},
	drafty.StyleCode:          {name: "tt"},
	drafty.StyleLineBreak:     {name: "br", isVoid: true},
	drafty.StyleHidden:        {name: "span"},
	drafty.KindLink:           {name: "a"},
	drafty.KindMention:        {name: "a"},
	drafty.KindHashtag:        {name: "a"},
	drafty.KindImage:          {name: "img", isVoid: true},
	drafty.KindFile:           {name: "a"},
	drafty.KindButton:         {name: "button"},
}

// TagName returns the HTML element name for the drafty tag, or an empty string if unknown.
func TagName(tag string) string {
	return htmlTags[tag].name
}

// HTMLAttrs converts entity data into HTML attributes of the element.
func HTMLAttrs(tag string, data map[string]any) []html.Attribute {
	var attrs []html.Attribute
	add := func(key, val string) {
		if val != "" {
			attrs = append(attrs, html.Attribute{Key: key, Val: val})
		}
	}

	switch tag {
	case drafty.StyleHidden:
		attrs = append(attrs, html.Attribute{Key: "hidden"})

	case drafty.KindLink:
		add("href", str(data["url"]))

	case drafty.KindMention:
		add("href", "#"+str(data["val"]))

	case drafty.KindHashtag:
		add("href", "#"+str(data["val"]))

	case drafty.KindImage:
		src := drafty.PreviewURL(data)
		if src == "" {
			src = str(data["ref"])
		}
		add("src", src)
		add("title", str(data["name"]))
		add("alt", str(data["name"]))
		if w, ok := number(data["width"]); ok && w > 0 {
			add("width", strconv.Itoa(w))
		}
		if h, ok := number(data["height"]); ok && h > 0 {
			add("height", strconv.Itoa(h))
		}

	case drafty.KindFile:
		add("href", drafty.DownloadURL(data))
		add("download", str(data["name"]))
		add("type", drafty.EntityMimeType(data))

	case drafty.KindButton:
		add("data-act", str(data["act"]))
		add("data-val", str(data["val"]))
		add("data-name", str(data["name"]))
		add("data-ref", str(data["ref"]))
	}

	return attrs
}

// HTMLFormatter builds *html.Node trees. The top-level node is a document node
// holding the rendered fragment.
type HTMLFormatter struct{}

func (HTMLFormatter) Apply(tag string, data map[string]any, content drafty.Content[*html.Node]) *html.Node {
	if tag == "" {
		switch content.Kind {
		case drafty.ContentText:
			return &html.Node{Type: html.TextNode, Data: content.Text}
		case drafty.ContentNode:
			return content.Node
		}

		fragment := &html.Node{Type: html.DocumentNode}
		appendChildren(fragment, content)
		return fragment
	}

	t, ok := htmlTags[tag]
	if !ok {
		// unknown tags are rendered as plain content
		t = htmlTag{name: "span"}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     t.name,
		DataAtom: atom.Lookup([]byte(t.name)),
		Attr:     HTMLAttrs(tag, data),
	}

	if tag == drafty.KindFile && content.Kind == drafty.ContentNone {
		// out-of-band attachment gets its name as the link text
		name := str(data["name"])
		if name == "" {
			name = "attachment"
		}
		el.AppendChild(&html.Node{Type: html.TextNode, Data: name})
		return el
	}

	if !t.isVoid {
		appendChildren(el, content)
	}

	return el
}

func appendChildren(parent *html.Node, content drafty.Content[*html.Node]) {
	switch content.Kind {
	case drafty.ContentText:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: content.Text})
	case drafty.ContentNode:
		parent.AppendChild(content.Node)
	case drafty.ContentNodes:
		for _, n := range content.Nodes {
			parent.AppendChild(n)
		}
	}
}

// HTML renders the document as an HTML fragment. Text is escaped.
func HTML(doc *drafty.Document) (string, error) {
	root := drafty.Format[*html.Node](doc, HTMLFormatter{})

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}
