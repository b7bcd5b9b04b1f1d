package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/drafty/drafty"
)

// ErrInvalidDocument is returned by Document.Parse for well-formed JSON which is not a valid document.
var ErrInvalidDocument = errors.New("invalid document")

var knownStyles = map[string]bool{
	drafty.StyleBold:          true,
	drafty.StyleItalic:        true,
	drafty.StyleStrikethrough: true,
	drafty.StyleCode:          true,
	drafty.StyleLineBreak:     true,
	drafty.StyleHidden:        true,
}

var knownKinds = map[string]bool{
	drafty.KindLink:    true,
	drafty.KindMention: true,
	drafty.KindHashtag: true,
	drafty.KindImage:   true,
	drafty.KindFile:    true,
	drafty.KindButton:  true,
}

// Document implements Schema for drafty documents. Unlike the renderer, which
// tolerates broken input, it rejects documents with unknown fields, unknown tags,
// dangling entity keys or ranges outside the text.
type Document struct {
	// MaxTextLength limits the text length in runes, 0 means no limit.
	MaxTextLength int
}

func (s *Document) Name() string {
	return drafty.ContentType
}

func (s *Document) Version() int32 {
	return 1
}

// Parse decodes the document, validates it and returns it re-encoded.
func (s *Document) Parse(body []byte) ([]byte, error) {
	doc, err := s.Decode(body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Decode is Parse which returns the document itself.
func (s *Document) Decode(body []byte) (*drafty.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var doc drafty.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	if s.MaxTextLength > 0 && doc.TextLength() > s.MaxTextLength {
		return nil, fmt.Errorf("%w: text is longer than %d characters", ErrInvalidDocument, s.MaxTextLength)
	}

	for i, r := range doc.Ranges {
		if r.Kind == drafty.RangeStyle && r.Style != "" && !knownStyles[r.Style] {
			return nil, fmt.Errorf("%w: fmt[%d]: unknown style %q", ErrInvalidDocument, i, r.Style)
		}
	}

	for i, ent := range doc.Entities {
		if !knownKinds[ent.Kind] {
			return nil, fmt.Errorf("%w: ent[%d]: unknown entity type %q", ErrInvalidDocument, i, ent.Kind)
		}
	}

	if warns := doc.Validate(); len(warns) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, warns[0].Description)
	}

	return &doc, nil
}
