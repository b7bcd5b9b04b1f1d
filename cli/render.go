package cli

import (
	"fmt"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/Drolfothesgnir/drafty/render"
	"github.com/Drolfothesgnir/drafty/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON document",
		Long: `Renders a JSON document (or markup with --markup) read from the file or stdin
as html, text, markup or term.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, config)
		},
	}

	cmd.Flags().StringP("format", "f", config.OutputFormat, "Output format: html, text, markup, term")
	cmd.Flags().Bool("markup", false, "Read markup instead of a JSON document")
	cmd.Flags().Bool("no-color", false, "Disable colors in the term format")

	viper.BindPFlag("OUTPUT_FORMAT", cmd.Flags().Lookup("format"))

	return cmd
}

func runRender(cmd *cobra.Command, args []string, config util.Config) error {
	var doc *drafty.Document

	if fromMarkup, _ := cmd.Flags().GetBool("markup"); fromMarkup {
		data, err := readInput(cmd, inputName(args), config.MaxInputBytes)
		if err != nil {
			return err
		}
		doc = drafty.Parse(string(data))
	} else {
		var err error
		doc, err = readDocument(cmd, args, config.MaxInputBytes)
		if err != nil {
			return err
		}
	}

	for _, w := range doc.Validate() {
		log.Debug().Str("issue", w.Issue.String()).Int("pos", w.Pos).Msg(w.Description)
	}

	colors := render.Colors{
		Link:    config.TermLinkColor,
		Mention: config.TermMentionColor,
		Hashtag: config.TermHashtagColor,
		Code:    config.TermCodeColor,
	}

	format := viper.GetString("OUTPUT_FORMAT")

	var out string
	if format == render.FormatTerminal {
		// colors depend on the actual output, not on os.Stdout
		r := lipgloss.NewRenderer(cmd.OutOrStdout())
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			r.SetColorProfile(termenv.Ascii)
		}
		out = drafty.Format[string](doc, render.NewTerminalFormatter(r, colors))
	} else {
		var err error
		out, err = render.Render(doc, format, colors)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
