package drafty

import (
	"encoding/base64"
	"fmt"
	"iter"
	"strings"
)

// Init creates a document from plain text without parsing any markup.
func Init(plain string) *Document {
	return &Document{Text: plain}
}

// AppendLineBreak appends a line break: a space covered by a BR range.
func (d *Document) AppendLineBreak() {
	d.Ranges = append(d.Ranges, StyleRange(d.TextLength(), 1, StyleLineBreak))
	d.Text += " "
}

// Append adds the other document to the end of this one. Ranges of the other document
// are shifted past the current text and its entity keys past the current entity table.
func (d *Document) Append(other *Document) {
	if other == nil {
		return
	}

	shift := d.TextLength()
	base := len(d.Entities)

	for _, r := range other.Ranges {
		if r.Offset >= 0 {
			r.Offset += shift
		}
		if r.Kind == RangeEntity {
			r.Key += base
		}
		d.Ranges = append(d.Ranges, r)
	}

	d.Text += other.Text
	d.Entities = append(d.Entities, other.Entities...)
}

// IsPlainText reports whether the document has neither ranges nor entities.
func (d *Document) IsPlainText() bool {
	return d == nil || (len(d.Ranges) == 0 && len(d.Entities) == 0)
}

// HasAttachments reports whether the document has out-of-band file attachments.
func (d *Document) HasAttachments() bool {
	for range d.Attachments() {
		return true
	}
	return false
}

// Attachments iterates over the out-of-band EX entities in range order,
// yielding the entity key and the entity.
func (d *Document) Attachments() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		if d == nil {
			return
		}
		for _, r := range d.Ranges {
			if r.Offset >= 0 || r.Kind != RangeEntity || r.Key < 0 || r.Key >= len(d.Entities) {
				continue
			}
			if ent := d.Entities[r.Key]; ent.Kind == KindFile {
				if !yield(r.Key, ent) {
					return
				}
			}
		}
	}
}

// EntityRefs iterates over every valid entity range, yielding the range and its entity.
func (d *Document) EntityRefs() iter.Seq2[FormatRange, Entity] {
	return func(yield func(FormatRange, Entity) bool) {
		if d == nil {
			return
		}
		for _, r := range d.Ranges {
			if r.Kind != RangeEntity || r.Key < 0 || r.Key >= len(d.Entities) {
				continue
			}
			if !yield(r, d.Entities[r.Key]) {
				return
			}
		}
	}
}

// Validate checks the document invariants and reports every violation.
// A nil result means the document is well-formed.
func (d *Document) Validate() []Warning {
	if d == nil {
		return nil
	}

	var warns []Warning
	n := d.TextLength()

	for i, r := range d.Ranges {
		switch {
		case r.Kind == RangeEntity && (r.Key < 0 || r.Key >= len(d.Entities)):
			warns = append(warns, Warning{
				Issue:       IssueDanglingEntity,
				Line:        -1,
				Pos:         i,
				Description: fmt.Sprintf("range %d references entity %d, the table has %d", i, r.Key, len(d.Entities)),
			})

		case r.Kind == RangeStyle && r.Style == "":
			warns = append(warns, Warning{
				Issue:       IssueEmptyStyle,
				Line:        -1,
				Pos:         i,
				Description: fmt.Sprintf("range %d has no style tag", i),
			})
		}

		if r.Offset < OutOfBand || r.Length < 0 || (r.Offset >= 0 && r.Offset+r.Length > n) {
			warns = append(warns, Warning{
				Issue:       IssueRangeOutOfBounds,
				Line:        -1,
				Pos:         i,
				Description: fmt.Sprintf("range %d [%d, +%d] is outside the text of %d runes", i, r.Offset, r.Length, n),
			})
		}
	}

	return warns
}

// EntityMimeType returns the MIME type of an attachment or image, "text/plain" if unknown.
func EntityMimeType(data map[string]any) string {
	if mime, ok := data["mime"].(string); ok && mime != "" {
		return mime
	}
	return "text/plain"
}

// EntitySize returns the declared size of the attachment, or the size of its
// inline content.
func EntitySize(data map[string]any) int {
	if size, ok := intValue(data["size"]); ok && size > 0 {
		return size
	}

	return len(bytesValue(data["val"]))
}

// PreviewURL returns a data URL with the inline content, or an empty string.
func PreviewURL(data map[string]any) string {
	bits := bytesValue(data["val"])
	if bits == nil {
		return ""
	}
	return "data:" + EntityMimeType(data) + ";base64," + base64.StdEncoding.EncodeToString(bits)
}

// DownloadURL returns a URL to fetch the attachment: a data URL for inline
// content, or the reference URL.
func DownloadURL(data map[string]any) string {
	if url := PreviewURL(data); url != "" {
		return url
	}
	if ref, ok := data["ref"].(string); ok {
		return ref
	}
	return ""
}

// bytesValue returns the byte content of val: either raw bytes or a base64 string.
func bytesValue(val any) []byte {
	switch v := val.(type) {
	case []byte:
		return v
	case string:
		if v == "" {
			return nil
		}
		if b, err := base64.StdEncoding.DecodeString(v); err == nil {
			return b
		}
		return []byte(v)
	}
	return nil
}

// intValue accepts both native ints and JSON numbers.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// ToPlainText drops the formatting and restores the line breaks.
func ToPlainText(doc *Document) string {
	return Format[string](doc, FormatterFunc[string](plainText))
}

func plainText(tag string, _ map[string]any, content Content[string]) string {
	switch {
	case tag == StyleLineBreak:
		return "\n"
	case content.Kind == ContentText:
		return content.Text
	case content.Kind == ContentNode:
		return content.Node
	case content.Kind == ContentNodes:
		return strings.Join(content.Nodes, "")
	}
	return ""
}
