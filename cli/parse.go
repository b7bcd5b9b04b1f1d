package cli

import (
	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/Drolfothesgnir/drafty/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func newParseCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Convert markup into JSON documents",
		Long: `Parses the markup files (or stdin) into JSON documents.
A single input prints one document, several inputs print an array
in the order of the arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, config)
		},
	}

	cmd.Flags().IntP("workers", "w", config.ParseWorkers, "Number of files parsed concurrently")
	cmd.Flags().Bool("warnings", false, "Log discarded overlapping spans")

	viper.BindPFlag("PARSE_WORKERS", cmd.Flags().Lookup("workers"))

	return cmd
}

func runParse(cmd *cobra.Command, args []string, config util.Config) error {
	names := args
	if len(names) == 0 {
		names = []string{stdinName}
	}

	workers := viper.GetInt("PARSE_WORKERS")
	if workers <= 0 {
		workers = 1
	}
	withWarnings, _ := cmd.Flags().GetBool("warnings")

	docs := make([]*drafty.Document, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := readInput(cmd, name, config.MaxInputBytes)
			if err != nil {
				return err
			}

			doc, warns := drafty.ParseWithWarnings(string(data))
			if withWarnings {
				for _, w := range warns {
					log.Warn().
						Str("file", name).
						Str("issue", w.Issue.String()).
						Int("line", w.Line).
						Int("pos", w.Pos).
						Msg(w.Description)
				}
			}

			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Debug().Int("files", len(names)).Msg("parsed")

	if len(docs) == 1 {
		return writeJSON(cmd, docs[0])
	}
	return writeJSON(cmd, docs)
}
