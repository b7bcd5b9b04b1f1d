package drafty

import (
	"cmp"
	"slices"
)

// span is a markup region detected in a raw line.
//
// start and end are the byte positions of the opening and the closing delimiters,
// so the content lies in [start+1, end).
type span struct {
	tag   string
	start int
	end   int
	text  string

	// children are indices of the nested spans in the spanTree arena.
	children []int
}

// spanTree is an arena of spans. Nodes refer to their children by index.
type spanTree struct {
	nodes []span
	roots []int
}

// spannify finds every non-overlapping match of the rule in the line.
func spannify(line string, rule StyleRule) []span {
	var spans []span

	// floor is the first byte which can serve as the leading context of the next match,
	// the closing delimiter of the previous match is consumed by it.
	floor := 0
	pos := 0

	for pos < len(line) {
		loc := rule.Pattern.FindStringSubmatchIndex(line[pos:])
		if loc == nil || loc[2] < 0 {
			break
		}

		contentStart, contentEnd := pos+loc[2], pos+loc[3]
		open, closing := contentStart-1, contentEnd

		if open < 0 || closing >= len(line) || !fenced(line, open, closing, floor, rule.Fence) {
			pos = pos + loc[0] + 1
			continue
		}

		spans = append(spans, span{
			tag:   rule.Tag,
			start: open,
			end:   closing,
			text:  line[contentStart:contentEnd],
		})

		pos = closing + 1
		floor = pos
	}

	return spans
}

// fenced checks the bytes around the delimiters.
func fenced(line string, open, closing, floor int, fence func(b byte) bool) bool {
	if open > 0 && (open-1 < floor || !fence(line[open-1])) {
		return false
	}

	if closing+1 < len(line) && !fence(line[closing+1]) {
		return false
	}

	return true
}

// newSpanTree sorts the spans by start ascending, and by end descending for
// spans starting at the same position, so the outer one comes first.
// The tree is not resolved yet: call resolve to link the nodes.
func newSpanTree(spans []span) *spanTree {
	slices.SortStableFunc(spans, func(a, b span) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(b.end, a.end)
	})

	return &spanTree{nodes: spans}
}

// build resolves containment of all the spans and stores the top-level ones as roots.
// Every span partially overlapping its would-be parent or sibling is passed to drop
// and left out of the tree.
func (t *spanTree) build(drop func(s span)) {
	ids := make([]int, len(t.nodes))
	for i := range ids {
		ids[i] = i
	}
	t.roots = t.resolve(ids, drop)
}

// resolve arranges the spans with the given ids into a forest and returns
// the ids of the top-level spans in left-to-right order.
func (t *spanTree) resolve(ids []int, drop func(s span)) []int {
	if len(ids) == 0 {
		return nil
	}

	level := []int{ids[0]}
	outer := ids[0]

	for _, id := range ids[1:] {
		s := t.nodes[id]
		last := t.nodes[outer]

		switch {
		case s.start > last.end:
			// completely outside of the current outer span
			level = append(level, id)
			outer = id

		case s.end < last.end:
			// completely inside, resolved later
			t.nodes[outer].children = append(t.nodes[outer].children, id)

		default:
			// partial overlap is invalid markup
			if drop != nil {
				drop(s)
			}
		}
	}

	for _, id := range level {
		t.nodes[id].children = t.resolve(t.nodes[id].children, drop)
	}

	return level
}
