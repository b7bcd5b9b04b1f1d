package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Drolfothesgnir/drafty/drafty"
	"github.com/Drolfothesgnir/drafty/util"
	"github.com/spf13/cobra"
)

func newImageCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image [file]",
		Short: "Insert an inline image into a JSON document",
		Long: `Inserts an image at the offset of the document read from the file or stdin.
The image is either embedded from a local file (--src) or referenced by URL (--ref).
With --new a document holding only the image is created instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var img drafty.Image
			img.Ref, _ = cmd.Flags().GetString("ref")
			img.Name, _ = cmd.Flags().GetString("name")
			img.Mime, _ = cmd.Flags().GetString("mime")
			img.Width, _ = cmd.Flags().GetInt("width")
			img.Height, _ = cmd.Flags().GetInt("height")

			if src, _ := cmd.Flags().GetString("src"); src != "" {
				if err := embed(src, config.MaxInputBytes, &img.Bits, &img.Mime, &img.Name, &img.Size); err != nil {
					return err
				}
			}

			if standalone, _ := cmd.Flags().GetBool("new"); standalone {
				doc, err := drafty.NewImageDocument(img)
				if err != nil {
					return err
				}
				return writeJSON(cmd, doc)
			}

			doc, err := readDocument(cmd, args, config.MaxInputBytes)
			if err != nil {
				return err
			}

			at, _ := cmd.Flags().GetInt("at")
			if err := doc.InsertImage(at, img); err != nil {
				return err
			}
			return writeJSON(cmd, doc)
		},
	}

	cmd.Flags().Int("at", 0, "Offset of the image in the text")
	cmd.Flags().Bool("new", false, "Create a new document with the image only")
	cmd.Flags().String("src", "", "Local image file to embed")
	cmd.Flags().String("ref", "", "URL of the image")
	cmd.Flags().String("name", "", "File name of the image")
	cmd.Flags().String("mime", "", "MIME type, detected from the content if empty")
	cmd.Flags().Int("width", 0, "Width in pixels")
	cmd.Flags().Int("height", 0, "Height in pixels")

	return cmd
}

func newAttachCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach [file]",
		Short: "Attach a file or JSON data to a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args, config.MaxInputBytes)
			if err != nil {
				return err
			}

			if raw, _ := cmd.Flags().GetString("json"); raw != "" {
				var value any
				if err := json.Unmarshal([]byte(raw), &value); err != nil {
					return fmt.Errorf("%w: invalid JSON attachment: %v", drafty.ErrIllegalArgument, err)
				}
				doc.AttachJSON(value)
				return writeJSON(cmd, doc)
			}

			var f drafty.File
			f.Ref, _ = cmd.Flags().GetString("ref")
			f.Name, _ = cmd.Flags().GetString("name")
			f.Mime, _ = cmd.Flags().GetString("mime")

			if src, _ := cmd.Flags().GetString("src"); src != "" {
				if err := embed(src, config.MaxInputBytes, &f.Bits, &f.Mime, &f.Name, &f.Size); err != nil {
					return err
				}
			}

			if err := doc.AttachFile(f); err != nil {
				return err
			}
			return writeJSON(cmd, doc)
		},
	}

	cmd.Flags().String("src", "", "Local file to embed")
	cmd.Flags().String("ref", "", "URL of the file")
	cmd.Flags().String("name", "", "File name")
	cmd.Flags().String("mime", "", "MIME type, detected from the content if empty")
	cmd.Flags().String("json", "", "Attach this JSON value instead of a file")

	cmd.MarkFlagsMutuallyExclusive("json", "src")
	cmd.MarkFlagsMutuallyExclusive("json", "ref")

	return cmd
}

func newButtonCommand(config util.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "button [file]",
		Short: "Turn a piece of text of a JSON document into a button",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args, config.MaxInputBytes)
			if err != nil {
				return err
			}

			var b drafty.Button
			b.Act, _ = cmd.Flags().GetString("act")
			b.Name, _ = cmd.Flags().GetString("name")
			b.Val, _ = cmd.Flags().GetString("val")
			b.Ref, _ = cmd.Flags().GetString("ref")

			at, _ := cmd.Flags().GetInt("at")
			length, _ := cmd.Flags().GetInt("len")

			if err := doc.InsertButton(at, length, b); err != nil {
				return err
			}
			return writeJSON(cmd, doc)
		},
	}

	cmd.Flags().Int("at", 0, "Offset of the button text")
	cmd.Flags().Int("len", 0, "Length of the button text")
	cmd.Flags().String("act", drafty.ActionPub, "Action: url or pub")
	cmd.Flags().String("name", "", "Button name sent with the action")
	cmd.Flags().String("val", "", "Value sent with the action")
	cmd.Flags().String("ref", "", "URL to open for the url action")

	return cmd
}

// embed reads the local file into bits and fills the empty metadata from it.
func embed(path string, limit int64, bits *[]byte, mime, name *string, size *int) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if limit > 0 && info.Size() > limit {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, path, limit)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	*bits = data
	*size = len(data)
	if *mime == "" {
		*mime = http.DetectContentType(data)
	}
	if *name == "" {
		*name = filepath.Base(path)
	}
	return nil
}
