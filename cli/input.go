package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/spf13/cobra"
)

// ErrInputTooLarge is returned when an input exceeds MAX_INPUT_BYTES.
var ErrInputTooLarge = errors.New("input is too large")

// stdinName stands for the standard input in the file arguments.
const stdinName = "-"

// readInput reads the named file, or stdin for "-". A limit <= 0 means no limit.
func readInput(cmd *cobra.Command, name string, limit int64) ([]byte, error) {
	var r io.Reader
	if name == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, name, limit)
	}
	return data, nil
}

// inputName returns the only file argument, or stdin.
func inputName(args []string) string {
	if len(args) == 0 {
		return stdinName
	}
	return args[0]
}

func readDocument(cmd *cobra.Command, args []string, limit int64) (*drafty.Document, error) {
	name := inputName(args)

	data, err := readInput(cmd, name, limit)
	if err != nil {
		return nil, err
	}

	var doc drafty.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode document %s: %w", name, err)
	}
	return &doc, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if indent, _ := cmd.Flags().GetBool("indent"); indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
