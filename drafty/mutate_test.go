package drafty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertImage(t *testing.T) {
	doc := Init("a b")

	err := doc.InsertImage(1, Image{Mime: "image/png", Bits: []byte{1, 2}, Width: 10, Height: 20, Name: "dot.png"})
	require.NoError(t, err)

	require.Equal(t, []FormatRange{EntityRange(1, 1, 0)}, doc.Ranges)
	require.Equal(t, []Entity{{
		Kind: KindImage,
		Data: map[string]any{
			"mime":   "image/png",
			"val":    []byte{1, 2},
			"width":  10,
			"height": 20,
			"name":   "dot.png",
		},
	}}, doc.Entities)
}

func TestInsertImage_Errors(t *testing.T) {
	type tc struct {
		name    string
		at      int
		img     Image
		wantErr error
	}

	tests := []tc{
		{
			name:    "no_bits_no_ref",
			at:      0,
			img:     Image{Width: 1, Height: 1},
			wantErr: ErrIllegalArgument,
		},
		{
			name:    "negative_width",
			at:      0,
			img:     Image{Ref: "https://x.org/i.png", Width: -1},
			wantErr: ErrIllegalArgument,
		},
		{
			name:    "offset_beyond_text",
			at:      10,
			img:     Image{Ref: "https://x.org/i.png"},
			wantErr: ErrInvalidIndex,
		},
		{
			name:    "negative_offset",
			at:      -1,
			img:     Image{Ref: "https://x.org/i.png"},
			wantErr: ErrInvalidIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Init("abc")
			err := doc.InsertImage(tt.at, tt.img)
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, doc.Ranges)
			require.Empty(t, doc.Entities)
		})
	}
}

func TestInsertImage_AtTextEnd(t *testing.T) {
	doc := Init("abc")
	require.NoError(t, doc.InsertImage(3, Image{Ref: "https://x.org/i.png"}))
	require.Equal(t, EntityRange(3, 1, 0), doc.Ranges[0])
}

func TestNewImageDocument(t *testing.T) {
	doc, err := NewImageDocument(Image{Ref: "https://x.org/i.png", Width: 5, Height: 5})
	require.NoError(t, err)
	require.Equal(t, " ", doc.Text)
	require.Equal(t, []FormatRange{EntityRange(0, 1, 0)}, doc.Ranges)
	require.Equal(t, KindImage, doc.Entities[0].Kind)

	_, err = NewImageDocument(Image{})
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestAttachFile(t *testing.T) {
	doc := Init("report")

	err := doc.AttachFile(File{Mime: "application/pdf", Name: "r.pdf", Ref: "https://x.org/r.pdf", Size: 10})
	require.NoError(t, err)

	require.Equal(t, []FormatRange{EntityRange(OutOfBand, 1, 0)}, doc.Ranges)
	require.Equal(t, []Entity{{
		Kind: KindFile,
		Data: map[string]any{
			"mime": "application/pdf",
			"name": "r.pdf",
			"ref":  "https://x.org/r.pdf",
			"size": 10,
		},
	}}, doc.Entities)
	require.True(t, doc.HasAttachments())
}

func TestAttachFile_Errors(t *testing.T) {
	doc := Init("report")

	err := doc.AttachFile(File{Name: "nothing.txt"})
	require.ErrorIs(t, err, ErrIllegalArgument)
	require.Contains(t, err.Error(), `"ref"`)

	err = doc.AttachFile(File{Bits: []byte("x"), Size: -5})
	require.ErrorIs(t, err, ErrIllegalArgument)

	require.Empty(t, doc.Ranges)
	require.Empty(t, doc.Entities)
}

func TestAttachJSON(t *testing.T) {
	doc := Init("")
	doc.AttachJSON(map[string]any{"answer": 42})

	require.Equal(t, []FormatRange{EntityRange(OutOfBand, 1, 0)}, doc.Ranges)
	require.Equal(t, KindFile, doc.Entities[0].Kind)
	require.Equal(t, JSONMimeType, doc.Entities[0].Data["mime"])
	require.Equal(t, map[string]any{"answer": 42}, doc.Entities[0].Data["val"])
}

func TestInsertButton_Errors(t *testing.T) {
	type tc struct {
		name    string
		at      int
		length  int
		button  Button
		wantErr error
	}

	tests := []tc{
		{
			name:    "unknown_action",
			at:      0,
			length:  2,
			button:  Button{Act: "get", Ref: "https://x.org"},
			wantErr: ErrIllegalArgument,
		},
		{
			name:    "empty_action",
			at:      0,
			length:  2,
			button:  Button{},
			wantErr: ErrIllegalArgument,
		},
		{
			name:    "url_without_ref",
			at:      0,
			length:  2,
			button:  Button{Act: ActionURL},
			wantErr: ErrIllegalArgument,
		},
		{
			name:    "range_beyond_text",
			at:      2,
			length:  5,
			button:  Button{Act: ActionPub},
			wantErr: ErrInvalidIndex,
		},
		{
			name:    "zero_length",
			at:      0,
			length:  0,
			button:  Button{Act: ActionPub},
			wantErr: ErrInvalidIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Init("ok go")
			err := doc.InsertButton(tt.at, tt.length, tt.button)
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, doc.Ranges)
			require.Empty(t, doc.Entities)
		})
	}
}

func TestInsertButton_URL(t *testing.T) {
	doc := Init("ok go")
	require.NoError(t, doc.InsertButton(3, 2, Button{Act: ActionURL, Ref: "https://x.org", Name: "go"}))

	require.Equal(t, []FormatRange{EntityRange(3, 2, 0)}, doc.Ranges)
	require.Equal(t, map[string]any{"act": "url", "ref": "https://x.org", "name": "go"}, doc.Entities[0].Data)
}

func TestMutators_AppendOnly(t *testing.T) {
	doc := Parse("*hi* @alice www.x.org")

	ranges := append([]FormatRange(nil), doc.Ranges...)
	entities := append([]Entity(nil), doc.Entities...)

	require.NoError(t, doc.InsertImage(0, Image{Ref: "https://x.org/i.png"}))
	require.NoError(t, doc.AttachFile(File{Ref: "https://x.org/f"}))
	doc.AttachJSON([]int{1, 2})
	require.NoError(t, doc.InsertButton(0, 2, Button{Act: ActionPub}))

	require.Equal(t, ranges, doc.Ranges[:len(ranges)])
	require.Equal(t, entities, doc.Entities[:len(entities)])
	require.Len(t, doc.Ranges, len(ranges)+4)
	require.Len(t, doc.Entities, len(entities)+4)

	for i, r := range doc.Ranges[len(ranges):] {
		require.Equal(t, RangeEntity, r.Kind)
		require.Equal(t, len(entities)+i, r.Key)
	}

	require.Empty(t, doc.Validate())
}
