package drafty

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument is returned by the entity mutators when a required
	// alternative input is missing or a value is outside its allowed set.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInvalidIndex is returned when an insertion offset is outside the text bounds.
	ErrInvalidIndex = errors.New("invalid index")
)

// Issue defines the kind of a non-fatal problem found in the markup or in a document,
// or the kind of an invalid rule configuration.
type Issue int

const (
	// IssueOverlappingSpan means a markup span partially overlaps an earlier one
	// and was discarded.
	IssueOverlappingSpan Issue = iota

	// IssueDanglingEntity means an entity range key is not a valid index into the entity table.
	IssueDanglingEntity

	// IssueRangeOutOfBounds means a range starts or ends outside the document text.
	IssueRangeOutOfBounds

	// IssueEmptyStyle means a style range has no tag.
	IssueEmptyStyle

	// IssueEmptyRuleTag occurs when a rule is created with an empty tag or kind.
	IssueEmptyRuleTag

	// IssueInvalidRulePattern occurs when a rule pattern does not compile or has a wrong
	// number of capture groups.
	IssueInvalidRulePattern

	// IssueMissingPacker occurs when an entity rule has no data packer.
	IssueMissingPacker
)

var issueNames = map[Issue]string{
	IssueOverlappingSpan:    "overlapping span",
	IssueDanglingEntity:     "dangling entity",
	IssueRangeOutOfBounds:   "range out of bounds",
	IssueEmptyStyle:         "empty style",
	IssueEmptyRuleTag:       "empty rule tag",
	IssueInvalidRulePattern: "invalid rule pattern",
	IssueMissingPacker:      "missing packer",
}

func (i Issue) String() string {
	if name, ok := issueNames[i]; ok {
		return name
	}
	return fmt.Sprintf("issue(%d)", int(i))
}

// Warning describes a problem which did not stop the parsing or the rendering.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue `json:"issue"`

	// Line is the zero-based index of the input line. It's -1 for document-level warnings.
	Line int `json:"line"`

	// Pos is the byte position in the raw line for markup warnings, or the index
	// of the range for document warnings.
	Pos int `json:"pos"`

	// Description is a human-readable story of what went wrong.
	Description string `json:"description"`
}

// ConfigError describes an invalid style or entity rule.
type ConfigError struct {
	Issue Issue // Issue is the kind of the problem.
	Err   error // Err is the original error.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}
