package drafty

import (
	"encoding/json"
	"unicode/utf8"
)

// ContentType is the MIME type of a serialized Document.
const ContentType = "text/x-drafty"

// JSONMimeType marks EX entities created by [Document.AttachJSON].
const JSONMimeType = "application/json"

// OutOfBand is the offset of ranges which are not anchored to any visible text,
// e.g. file attachments.
const OutOfBand = -1

// Style tags of the inline formatting ranges.
const (
	StyleBold          = "ST"
	StyleItalic        = "EM"
	StyleStrikethrough = "DL"
	StyleCode          = "CO"
	StyleLineBreak     = "BR"

	// StyleHidden replaces the tag of ranges which cannot be resolved during rendering.
	StyleHidden = "HD"
)

// Entity kinds.
const (
	KindLink    = "LN"
	KindMention = "MN"
	KindHashtag = "HT"
	KindImage   = "IM"
	KindFile    = "EX"
	KindButton  = "BN"
)

// RangeKind tells what a [FormatRange] refers to.
type RangeKind int

const (
	// RangeStyle is an inline style span, e.g. bold or a line break.
	RangeStyle RangeKind = iota

	// RangeEntity is an anchor pointing at an entry of [Document.Entities].
	RangeEntity
)

// FormatRange is a flat range over the document text.
//
// Offset and Length are counted in runes, not bytes. Exactly one of Style and Key
// is meaningful, depending on Kind. Use [StyleRange] and [EntityRange] to build
// legal values.
type FormatRange struct {
	Offset int
	Length int
	Kind   RangeKind

	// Style is the style tag for RangeStyle ranges.
	Style string

	// Key is the index into Document.Entities for RangeEntity ranges.
	Key int
}

// StyleRange creates a range marking an inline style.
func StyleRange(at, length int, tag string) FormatRange {
	return FormatRange{Offset: at, Length: length, Kind: RangeStyle, Style: tag}
}

// EntityRange creates a range referencing the entity with the given key.
func EntityRange(at, length, key int) FormatRange {
	return FormatRange{Offset: at, Length: length, Kind: RangeEntity, Key: key}
}

// wireRange is the serialized form of FormatRange. A missing "tp" means the
// range references an entity, a missing "key" means key 0.
type wireRange struct {
	At  int    `json:"at"`
	Len int    `json:"len"`
	Tp  string `json:"tp,omitempty"`
	Key int    `json:"key,omitempty"`
}

func (r FormatRange) MarshalJSON() ([]byte, error) {
	w := wireRange{At: r.Offset, Len: r.Length}
	if r.Kind == RangeStyle {
		w.Tp = r.Style
	} else {
		w.Key = r.Key
	}
	return json.Marshal(w)
}

func (r *FormatRange) UnmarshalJSON(data []byte) error {
	var w wireRange
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Tp != "" {
		*r = StyleRange(w.At, w.Len, w.Tp)
	} else {
		*r = EntityRange(w.At, w.Len, w.Key)
	}
	return nil
}

// Entity is a typed payload referenced by one or more format ranges.
//
// Data content depends on Kind:
//
//	LN {url}
//	MN {val}
//	HT {val}
//	IM {mime?, val?, width, height, name?, ref?, size?}
//	EX {mime?, val?, name?, ref?, size?}
//	BN {act, name?, val?, ref?}
type Entity struct {
	Kind string         `json:"tp"`
	Data map[string]any `json:"data,omitempty"`
}

// Document is the normalized form of the inline markup: plain text, flat
// formatting ranges over it and the table of referenced entities.
//
// Every entity range key is expected to be a valid index into Entities.
// Empty Ranges and Entities are nil.
type Document struct {
	Text     string        `json:"txt,omitempty"`
	Ranges   []FormatRange `json:"fmt,omitempty"`
	Entities []Entity      `json:"ent,omitempty"`
}

// TextLength returns the number of runes in the document text.
func (d *Document) TextLength() int {
	if d == nil {
		return 0
	}
	return utf8.RuneCountInString(d.Text)
}
