package drafty

import "unicode/utf8"

// entityMatch is a single entity occurrence found in the clean text.
type entityMatch struct {
	at     int // rune offset
	length int // rune length
	kind   string
	raw    string
	data   map[string]any
}

// extractEntities scans the text with every rule in order. Matches of different
// rules are not checked against each other and may overlap.
func extractEntities(text string, rules []EntityRule) []entityMatch {
	var matches []entityMatch

	for _, rule := range rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			groups := make([]string, len(loc)/2)
			for i := range groups {
				if loc[2*i] >= 0 {
					groups[i] = text[loc[2*i]:loc[2*i+1]]
				}
			}

			matches = append(matches, entityMatch{
				at:     utf8.RuneCountInString(text[:loc[0]]),
				length: utf8.RuneCountInString(groups[0]),
				kind:   rule.Kind,
				raw:    groups[0],
				data:   rule.Pack(groups),
			})
		}
	}

	return matches
}
