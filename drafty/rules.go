package drafty

import (
	"errors"
	"fmt"
	"regexp"
)

// StyleRule describes a single inline style of the markup.
//
// Pattern must have exactly one capture group, which holds the styled content
// without the delimiters. Delimiters are single bytes directly around the group.
//
// The regexp engine has no lookaround, so the context around a match is checked
// by Fence: the byte before the opening delimiter and the byte after the closing one
// must either be outside the line or satisfy Fence.
type StyleRule struct {
	Tag     string
	Pattern *regexp.Regexp
	Fence   func(b byte) bool
}

// NewStyleRule compiles the pattern and validates the rule.
func NewStyleRule(tag, pattern string, fence func(b byte) bool) (StyleRule, error) {
	if tag == "" {
		return StyleRule{}, NewConfigError(IssueEmptyRuleTag, errors.New("style rule tag is empty"))
	}

	re, err := compileRule(pattern, 1)
	if err != nil {
		return StyleRule{}, err
	}

	if fence == nil {
		fence = isNonWord
	}

	return StyleRule{Tag: tag, Pattern: re, Fence: fence}, nil
}

// Packer builds entity data from a match. groups[0] is the whole match, the rest are
// the capture groups; unmatched groups are empty strings.
type Packer func(groups []string) map[string]any

// EntityRule describes how to detect an entity of a given kind in the clean text.
type EntityRule struct {
	Kind    string
	Pattern *regexp.Regexp
	Pack    Packer
}

// NewEntityRule compiles the pattern and validates the rule.
func NewEntityRule(kind, pattern string, pack Packer) (EntityRule, error) {
	if kind == "" {
		return EntityRule{}, NewConfigError(IssueEmptyRuleTag, errors.New("entity rule kind is empty"))
	}

	if pack == nil {
		return EntityRule{}, NewConfigError(IssueMissingPacker, fmt.Errorf("entity rule %q has no packer", kind))
	}

	re, err := compileRule(pattern, -1)
	if err != nil {
		return EntityRule{}, err
	}

	return EntityRule{Kind: kind, Pattern: re, Pack: pack}, nil
}

// compileRule compiles the pattern and checks the number of capture groups,
// unless groups is negative.
func compileRule(pattern string, groups int) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, NewConfigError(IssueInvalidRulePattern, err)
	}

	if groups >= 0 && re.NumSubexp() != groups {
		return nil, NewConfigError(
			IssueInvalidRulePattern,
			fmt.Errorf("pattern %q must have %d capture group(s), got %d", pattern, groups, re.NumSubexp()),
		)
	}

	return re, nil
}

// isWord reports whether b belongs to the ASCII word class [0-9A-Za-z_].
// Bytes of multi-byte runes are never word bytes.
func isWord(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

func isNonWord(b byte) bool {
	return !isWord(b)
}

// isNonWordOrUnderscore lets italic spans touch other underscores.
func isNonWordOrUnderscore(b byte) bool {
	return b == '_' || !isWord(b)
}

// Default rule tables. They are never written after initialization and are safe
// to share between goroutines.
var (
	defaultStyles = []StyleRule{
		// *bold*
		mustStyleRule(StyleBold, `\*([^\s*][^*]*[^\s*]|[^\s*])\*`, isNonWord),
		// _italic_
		mustStyleRule(StyleItalic, `_([^\s_][^_]*[^\s_]|[^\s_])_`, isNonWordOrUnderscore),
		// ~strikethrough~
		mustStyleRule(StyleStrikethrough, `~([^\s~][^~]*[^\s~]|[^\s~])~`, isNonWord),
		// `code`
		mustStyleRule(StyleCode, "`([^`]+)`", isNonWord),
	}

	// defaultEntities are in priority order.
	defaultEntities = []EntityRule{
		mustEntityRule(
			KindLink,
			`(?i)(?:(https?|ftp)://|www\.|ftp\.)[-a-z0-9+&@#/%=~_|$?!:,.]*[a-z0-9+&@#/%=~_|$]`,
			packLink,
		),
		// @mention, at least 2 characters
		mustEntityRule(KindMention, `\B@(\w\w+)`, packToken),
		// #hashtag, at least 2 characters
		mustEntityRule(KindHashtag, `\B#(\w\w+)`, packToken),
	}
)

// DefaultStyleRules returns a copy of the built-in style rules.
func DefaultStyleRules() []StyleRule {
	return append([]StyleRule(nil), defaultStyles...)
}

// DefaultEntityRules returns a copy of the built-in entity rules.
func DefaultEntityRules() []EntityRule {
	return append([]EntityRule(nil), defaultEntities...)
}

// packLink stores the URL, prefixing bare domains with "http://".
func packLink(groups []string) map[string]any {
	url := groups[0]
	if len(groups) < 2 || groups[1] == "" {
		url = "http://" + url
	}
	return map[string]any{"url": url}
}

// packToken stores the captured token without its sigil.
func packToken(groups []string) map[string]any {
	return map[string]any{"val": groups[1]}
}

func mustStyleRule(tag, pattern string, fence func(b byte) bool) StyleRule {
	r, err := NewStyleRule(tag, pattern, fence)
	if err != nil {
		panic(err)
	}
	return r
}

func mustEntityRule(kind, pattern string, pack Packer) EntityRule {
	r, err := NewEntityRule(kind, pattern, pack)
	if err != nil {
		panic(err)
	}
	return r
}
