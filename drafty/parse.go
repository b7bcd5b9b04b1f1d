package drafty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Parser converts inline markup into Documents using its style and entity rules.
//
// A Parser is never modified after creation and may be used from many goroutines.
type Parser struct {
	styles   []StyleRule
	entities []EntityRule
}

// NewParser creates a Parser with custom rules. Entity rules are applied in the given order.
func NewParser(styles []StyleRule, entities []EntityRule) *Parser {
	return &Parser{
		styles:   append([]StyleRule(nil), styles...),
		entities: append([]EntityRule(nil), entities...),
	}
}

// DefaultParser uses the built-in rules: *bold*, _italic_, ~strikethrough~, `code`,
// links, @mentions and #hashtags.
var DefaultParser = NewParser(defaultStyles, defaultEntities)

// Parse converts the markup into a Document with the DefaultParser.
func Parse(content string) *Document {
	return DefaultParser.Parse(content)
}

// ParseWithWarnings is like Parse, but also returns the discarded markup spans.
func ParseWithWarnings(content string) (*Document, []Warning) {
	return DefaultParser.ParseWithWarnings(content)
}

// Parse converts the markup into a Document. Malformed markup never fails the parsing:
// partially overlapping spans are silently discarded.
func (p *Parser) Parse(content string) *Document {
	doc, _ := p.ParseWithWarnings(content)
	return doc
}

// ParseWithWarnings converts the markup into a Document and reports every discarded span.
func (p *Parser) ParseWithWarnings(content string) (*Document, []Warning) {
	state := parseState{
		parser: p,
		index:  make(map[string]int),
	}

	lines := strings.Split(content, "\n")
	blocks := make([]block, len(lines))

	for i, line := range lines {
		blocks[i] = state.parseLine(i, strings.TrimSuffix(line, "\r"))
	}

	doc := &Document{Text: blocks[0].text}
	doc.Ranges = append(doc.Ranges, blocks[0].ranges...)

	for _, b := range blocks[1:] {
		doc.AppendLineBreak()

		offset := utf8.RuneCountInString(doc.Text)
		for _, r := range b.ranges {
			r.Offset += offset
			doc.Ranges = append(doc.Ranges, r)
		}

		doc.Text += b.text
	}

	if len(doc.Ranges) == 0 {
		doc.Ranges = nil
	}

	if len(state.table) > 0 {
		doc.Entities = state.table
	}

	return doc, state.warns
}

// parseState holds the entity table shared by all lines of one Parse call.
type parseState struct {
	parser *Parser

	// index maps the raw matched value to the entity key.
	index map[string]int
	table []Entity
	warns []Warning
}

func (s *parseState) parseLine(n int, line string) block {
	var spans []span
	for _, rule := range s.parser.styles {
		spans = append(spans, spannify(line, rule)...)
	}

	var b block

	if len(spans) == 0 {
		b = block{text: line}
	} else {
		tree := newSpanTree(spans)
		tree.build(func(d span) {
			s.discard(n, d)
		})

		b = draftify(chunkify(line, 0, len(line), tree, tree.roots), 0)
	}

	for _, m := range extractEntities(b.text, s.parser.entities) {
		key, ok := s.index[m.raw]
		if !ok {
			key = len(s.table)
			s.index[m.raw] = key
			s.table = append(s.table, Entity{Kind: m.kind, Data: m.data})
		}

		b.ranges = append(b.ranges, EntityRange(m.at, m.length, key))
	}

	return b
}

func (s *parseState) discard(line int, d span) {
	desc := fmt.Sprintf("%s span [%d, %d] partially overlaps another span and was discarded", d.tag, d.start, d.end)

	log.Debug().
		Int("line", line).
		Int("pos", d.start).
		Str("tag", d.tag).
		Msg("discarding overlapping span")

	s.warns = append(s.warns, Warning{
		Issue:       IssueOverlappingSpan,
		Line:        line,
		Pos:         d.start,
		Description: desc,
	})
}
