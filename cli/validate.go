package cli

import (
	"github.com/Drolfothesgnir/drafty/content"
	"github.com/Drolfothesgnir/drafty/util"
	"github.com/spf13/cobra"
)

func newValidateCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a JSON document and print its canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, inputName(args), config.MaxInputBytes)
			if err != nil {
				return err
			}

			maxLen, _ := cmd.Flags().GetInt("max-length")
			schema := &content.Document{MaxTextLength: maxLen}

			doc, err := schema.Decode(data)
			if err != nil {
				return err
			}
			return writeJSON(cmd, doc)
		},
	}

	cmd.Flags().Int("max-length", 0, "Maximum text length in characters, 0 for no limit")

	return cmd
}
