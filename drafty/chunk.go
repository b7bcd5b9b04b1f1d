package drafty

import (
	"strings"
	"unicode/utf8"
)

// chunk is a markup-free fragment of a line: either plain text (empty tag),
// or a styled node with the text or nested chunks.
type chunk struct {
	tag      string
	text     string
	children []chunk
}

// chunkify strips the markup from the [start, end) window of the line using the spans
// with the given ids. Text between the spans becomes plain chunks.
func chunkify(line string, start, end int, t *spanTree, ids []int) []chunk {
	if len(ids) == 0 {
		return nil
	}

	chunks := make([]chunk, 0, 2*len(ids)+1)

	for _, id := range ids {
		s := t.nodes[id]

		if s.start > start {
			chunks = append(chunks, chunk{text: line[start:s.start]})
		}

		c := chunk{tag: s.tag}

		// the content window skips both delimiters
		if children := chunkify(line, s.start+1, s.end, t, s.children); len(children) > 0 {
			c.children = children
		} else {
			c.text = s.text
		}

		chunks = append(chunks, c)

		// skipping the closing delimiter
		start = s.end + 1
	}

	if end > start {
		chunks = append(chunks, chunk{text: line[start:end]})
	}

	return chunks
}

// block is a single parsed line.
type block struct {
	text   string
	ranges []FormatRange
}

// draftify flattens the chunks into plain text and a list of style ranges.
// base is the rune offset of the first chunk in the final text.
//
// Ranges of nested chunks come before the range of their parent.
func draftify(chunks []chunk, base int) block {
	var (
		b      strings.Builder
		ranges []FormatRange
		n      int
	)

	for _, c := range chunks {
		text := c.text

		if len(c.children) > 0 {
			inner := draftify(c.children, base+n)
			text = inner.text
			ranges = append(ranges, inner.ranges...)
		}

		length := utf8.RuneCountInString(text)

		if c.tag != "" {
			ranges = append(ranges, StyleRange(base+n, length, c.tag))
		}

		b.WriteString(text)
		n += length
	}

	return block{text: b.String(), ranges: ranges}
}
