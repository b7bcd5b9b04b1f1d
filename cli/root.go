// Package cli implements the drafty command line tool.
package cli

import (
	"context"

	"github.com/Drolfothesgnir/drafty/util"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. The config provides the defaults of the flags.
func NewRootCommand(config util.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drafty",
		Short: "Inline markup to structured documents and back",
		Long: `Converts chat-style inline markup (*bold*, _italic_, ~strike~, ` + "`code`" + `,
links, @mentions and #hashtags) into JSON documents, edits them
and renders them as HTML, plain text or terminal output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("indent", false, "Indent JSON output")

	rootCmd.AddCommand(
		newParseCommand(config),
		newRenderCommand(config),
		newImageCommand(config),
		newAttachCommand(config),
		newButtonCommand(config),
		newValidateCommand(config),
	)

	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context, config util.Config) error {
	return NewRootCommand(config).ExecuteContext(ctx)
}
