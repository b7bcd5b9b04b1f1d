package render

import (
	"testing"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	type tc struct {
		name  string
		input string
		want  string
	}

	tests := []tc{
		{
			name:  "plain",
			input: "just text",
			want:  "just text",
		},
		{
			name:  "styles",
			input: "*bold* and _it_ ~del~ `code`",
			want:  "<b>bold</b> and <i>it</i> <del>del</del> <tt>code</tt>",
		},
		{
			name:  "nested",
			input: "a *b _c_ d* e",
			want:  "a <b>b <i>c</i> d</b> e",
		},
		{
			name:  "line_break",
			input: "one\ntwo",
			want:  "one<br/>two",
		},
		{
			name:  "escaped_text",
			input: "a < b & c",
			want:  "a &lt; b &amp; c",
		},
		{
			name:  "link_with_scheme",
			input: "see https://x.org now",
			want:  `see <a href="https://x.org">https://x.org</a> now`,
		},
		{
			name:  "link_without_scheme",
			input: "www.x.org",
			want:  `<a href="http://www.x.org">www.x.org</a>`,
		},
		{
			name:  "mention_and_hashtag",
			input: "hi @alice #go",
			want:  `hi <a href="#alice">@alice</a> <a href="#go">#go</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HTML(drafty.Parse(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHTML_Image(t *testing.T) {
	doc := drafty.Init("ab")
	require.NoError(t, doc.InsertImage(1, drafty.Image{
		Ref:    "https://x.org/i.png",
		Name:   "pic",
		Width:  10,
		Height: 20,
	}))

	got, err := HTML(doc)
	require.NoError(t, err)
	require.Equal(t, `a<img src="https://x.org/i.png" title="pic" alt="pic" width="10" height="20"/>`, got)
}

func TestHTML_InlineImageData(t *testing.T) {
	doc, err := drafty.NewImageDocument(drafty.Image{Mime: "image/png", Bits: []byte{1, 2, 3}})
	require.NoError(t, err)

	got, err := HTML(doc)
	require.NoError(t, err)
	require.Equal(t, `<img src="data:image/png;base64,AQID"/>`, got)
}

func TestHTML_Attachment(t *testing.T) {
	doc := drafty.Init("hi")
	require.NoError(t, doc.AttachFile(drafty.File{
		Ref:  "https://x.org/f.pdf",
		Name: "f.pdf",
		Mime: "application/pdf",
	}))

	got, err := HTML(doc)
	require.NoError(t, err)
	require.Equal(t, `<a href="https://x.org/f.pdf" download="f.pdf" type="application/pdf">f.pdf</a>hi`, got)
}

func TestHTML_Button(t *testing.T) {
	doc := drafty.Init("click me")
	require.NoError(t, doc.InsertButton(0, 5, drafty.Button{Act: drafty.ActionPub, Name: "ok", Val: "1"}))

	got, err := HTML(doc)
	require.NoError(t, err)
	require.Equal(t, `<button data-act="pub" data-val="1" data-name="ok">click</button> me`, got)
}

func TestHTML_DanglingEntityIsHidden(t *testing.T) {
	doc := &drafty.Document{
		Text:   "ab",
		Ranges: []drafty.FormatRange{drafty.EntityRange(0, 1, 5)},
	}

	got, err := HTML(doc)
	require.NoError(t, err)
	require.Equal(t, `<span hidden="">a</span>b`, got)
}

func TestHTML_NilDocument(t *testing.T) {
	got, err := HTML(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTagName(t *testing.T) {
	require.Equal(t, "b", TagName(drafty.StyleBold))
	require.Equal(t, "img", TagName(drafty.KindImage))
	require.Empty(t, TagName("XX"))
}
