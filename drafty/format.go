package drafty

import (
	"cmp"
	"maps"
	"slices"
)

// ContentKind defines which field of [Content] is set.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentText
	ContentNode
	ContentNodes
)

// Content is the payload passed to a [Formatter]: nothing, a piece of text,
// a single node or a sequence of nodes, depending on Kind.
type Content[N any] struct {
	Kind  ContentKind
	Text  string
	Node  N
	Nodes []N
}

// NoContent is used for out-of-band ranges like file attachments.
func NoContent[N any]() Content[N] {
	return Content[N]{Kind: ContentNone}
}

func TextContent[N any](text string) Content[N] {
	return Content[N]{Kind: ContentText, Text: text}
}

func NodeContent[N any](node N) Content[N] {
	return Content[N]{Kind: ContentNode, Node: node}
}

func NodesContent[N any](nodes []N) Content[N] {
	return Content[N]{Kind: ContentNodes, Nodes: nodes}
}

// Formatter builds output nodes of type N, e.g. HTML nodes or strings.
//
// Apply is called once per structural element, innermost first and left to right.
// tag is empty for unstyled text and for the top-level call, data is nil unless
// the element is an entity.
type Formatter[N any] interface {
	Apply(tag string, data map[string]any, content Content[N]) N
}

// FormatterFunc is an adapter to allow the use of ordinary functions as Formatters.
type FormatterFunc[N any] func(tag string, data map[string]any, content Content[N]) N

func (f FormatterFunc[N]) Apply(tag string, data map[string]any, content Content[N]) N {
	return f(tag, data, content)
}

// styledRange is a format range with the entity resolved into its tag and data.
type styledRange struct {
	at     int
	length int
	tag    string
	data   map[string]any
}

// Format walks the document and builds the output tree with the formatter.
// The document itself is not modified.
func Format[N any](doc *Document, f Formatter[N]) N {
	if doc == nil {
		return f.Apply("", nil, TextContent[N](""))
	}

	ranges := doc.Ranges
	if len(ranges) == 0 {
		// a document with a single attachment and no text still has to render
		if len(doc.Entities) != 1 {
			return f.Apply("", nil, TextContent[N](doc.Text))
		}
		ranges = []FormatRange{EntityRange(0, 0, 0)}
	}

	text := []rune(doc.Text)

	spans := make([]styledRange, len(ranges))
	for i, r := range ranges {
		spans[i] = doc.resolve(r, len(text))
	}

	slices.SortStableFunc(spans, func(a, b styledRange) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		// longer one comes first
		return cmp.Compare(b.length, a.length)
	})

	return f.Apply("", nil, NodesContent(forEach(text, 0, len(text), spans, f)))
}

// resolve normalizes the range and looks up its entity.
// Ranges which cannot be resolved get the StyleHidden tag.
func (d *Document) resolve(r FormatRange, textLen int) styledRange {
	s := styledRange{at: max(r.Offset, OutOfBand), length: max(r.Length, 0)}

	if s.at > textLen {
		s.at = textLen
	}
	if s.at >= 0 && s.at+s.length > textLen {
		s.length = textLen - s.at
	}

	switch r.Kind {
	case RangeStyle:
		s.tag = r.Style

	case RangeEntity:
		if r.Key >= 0 && r.Key < len(d.Entities) {
			ent := d.Entities[r.Key]
			s.tag = ent.Kind
			s.data = ent.Data
		}
	}

	if s.tag == "" {
		s.tag = StyleHidden
	}

	return s
}

// forEach formats the [start, end) window of the text with the sorted spans.
func forEach[N any](text []rune, start, end int, spans []styledRange, f Formatter[N]) []N {
	var result []N

	for i := 0; i < len(spans); i++ {
		s := spans[i]

		if s.at < 0 {
			// out-of-band spans do not consume any text
			result = append(result, f.Apply(s.tag, s.data, NoContent[N]()))
			continue
		}

		if start < s.at {
			result = append(result, f.Apply("", nil, TextContent[N](string(text[start:s.at]))))
			start = s.at
		}

		stop := s.at + s.length

		// spans starting inside the current one are its children, unless they stick out
		var inner []styledRange
		j := i + 1
		for ; j < len(spans) && spans[j].at < stop; j++ {
			if spans[j].at+spans[j].length <= stop {
				inner = append(inner, spans[j])
			}
		}
		i = j - 1

		if s.tag == KindButton {
			title := string(text[s.at:stop])

			data := maps.Clone(s.data)
			if data == nil {
				data = make(map[string]any, 1)
			}
			data["title"] = title

			result = append(result, f.Apply(s.tag, data, TextContent[N](title)))
		} else {
			result = append(result, f.Apply(s.tag, s.data, NodesContent(forEach(text, s.at, stop, inner, f))))
		}

		start = max(start, stop)
	}

	if start < end {
		result = append(result, f.Apply("", nil, TextContent[N](string(text[start:end]))))
	}

	return result
}
