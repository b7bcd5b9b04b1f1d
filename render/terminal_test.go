package render

import (
	"io"
	"testing"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

func TestTerminal_NoColor(t *testing.T) {
	f := NewTerminalFormatter(newTestRenderer(termenv.Ascii), Colors{})

	type tc struct {
		name string
		doc  *drafty.Document
		want string
	}

	image := drafty.Init("ab")
	require.NoError(t, image.InsertImage(1, drafty.Image{Ref: "https://x.org/i.png", Name: "pic"}))

	file := drafty.Init("hi")
	require.NoError(t, file.AttachFile(drafty.File{Ref: "https://x.org/f.pdf", Name: "f.pdf"}))

	button := drafty.Init("click me")
	require.NoError(t, button.InsertButton(0, 5, drafty.Button{Act: drafty.ActionPub}))

	tests := []tc{
		{
			name: "styles_and_entities",
			doc:  drafty.Parse("*hi* @bob www.x.org\nnext"),
			want: "hi @bob www.x.org (http://www.x.org)\nnext",
		},
		{
			name: "link_same_as_text",
			doc:  drafty.Parse("https://x.org"),
			want: "https://x.org",
		},
		{
			name: "image",
			doc:  image,
			want: "a[image pic]",
		},
		{
			name: "attachment",
			doc:  file,
			want: "[file f.pdf]\nhi",
		},
		{
			name: "button",
			doc:  button,
			want: "[ click ] me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, drafty.Format[string](tt.doc, f))
		})
	}
}

func TestTerminal_Colors(t *testing.T) {
	f := NewTerminalFormatter(newTestRenderer(termenv.ANSI256), Colors{Mention: "#ff00aa"})

	got := drafty.Format[string](drafty.Parse("*hi* @bob"), f)

	require.Contains(t, got, "\x1b[")
	require.Contains(t, got, "hi")
	require.Contains(t, got, "@bob")
}

func TestWithDefaults(t *testing.T) {
	c := withDefaults(Colors{Link: "1"})

	require.Equal(t, "1", c.Link)
	require.Equal(t, DefaultColors.Mention, c.Mention)
	require.Equal(t, DefaultColors.Hashtag, c.Hashtag)
	require.Equal(t, DefaultColors.Code, c.Code)
}
