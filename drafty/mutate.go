package drafty

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Button action types.
const (
	ActionURL = "url"
	ActionPub = "pub"
)

// Image describes an inline image. Either Bits or Ref must be set.
type Image struct {
	Mime   string `json:"mime,omitempty"`
	Bits   []byte `json:"val,omitempty"`
	Width  int    `json:"width" validate:"gte=0"`
	Height int    `json:"height" validate:"gte=0"`
	Name   string `json:"name,omitempty"`
	Ref    string `json:"ref,omitempty" validate:"required_without=Bits"`
	Size   int    `json:"size,omitempty" validate:"gte=0"`
}

// File describes an out-of-band attachment. Either Bits or Ref must be set.
type File struct {
	Mime string `json:"mime,omitempty"`
	Bits []byte `json:"val,omitempty"`
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty" validate:"required_without=Bits"`
	Size int    `json:"size,omitempty" validate:"gte=0"`
}

// Button describes an interactive button over a piece of text.
// Ref is required for the [ActionURL] buttons.
type Button struct {
	Name string `json:"name,omitempty"`
	Act  string `json:"act" validate:"oneof=url pub"`
	Val  string `json:"val,omitempty"`
	Ref  string `json:"ref,omitempty" validate:"required_if=Act url"`
}

// validate is safe for concurrent use and caches struct info.
var validate = newValidator()

// newValidator creates a validator which reports json names of the fields.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates the mutator parameters and wraps any failure into ErrIllegalArgument.
func check(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: field %q failed on the %q rule", ErrIllegalArgument, fe.Field(), fe.Tag())
	}

	return fmt.Errorf("%w: %v", ErrIllegalArgument, err)
}

// NewImageDocument creates a document consisting of a single image.
func NewImageDocument(img Image) (*Document, error) {
	doc := &Document{Text: " "}
	if err := doc.InsertImage(0, img); err != nil {
		return nil, err
	}
	return doc, nil
}

// InsertImage anchors an inline image at the given rune offset.
func (d *Document) InsertImage(at int, img Image) error {
	if err := check(img); err != nil {
		return err
	}

	if n := d.TextLength(); at < 0 || at > n {
		return fmt.Errorf("%w: image offset %d is outside [0, %d]", ErrInvalidIndex, at, n)
	}

	data := map[string]any{
		"width":  img.Width,
		"height": img.Height,
	}
	putFileData(data, img.Mime, img.Bits, img.Name, img.Ref, img.Size)

	d.appendEntity(at, 1, Entity{Kind: KindImage, Data: data})
	return nil
}

// AttachFile adds an out-of-band file attachment.
func (d *Document) AttachFile(f File) error {
	if err := check(f); err != nil {
		return err
	}

	data := make(map[string]any)
	putFileData(data, f.Mime, f.Bits, f.Name, f.Ref, f.Size)

	d.appendEntity(OutOfBand, 1, Entity{Kind: KindFile, Data: data})
	return nil
}

// AttachJSON adds an out-of-band attachment with arbitrary structured data.
func (d *Document) AttachJSON(value any) {
	d.appendEntity(OutOfBand, 1, Entity{
		Kind: KindFile,
		Data: map[string]any{
			"mime": JSONMimeType,
			"val":  value,
		},
	})
}

// InsertButton turns length runes of text starting at offset at into a button.
func (d *Document) InsertButton(at, length int, b Button) error {
	if err := check(b); err != nil {
		return err
	}

	if n := d.TextLength(); at < 0 || length <= 0 || at+length > n {
		return fmt.Errorf("%w: button range [%d, %d) is outside [0, %d)", ErrInvalidIndex, at, at+length, n)
	}

	data := map[string]any{"act": b.Act}
	if b.Name != "" {
		data["name"] = b.Name
	}
	if b.Val != "" {
		data["val"] = b.Val
	}
	if b.Ref != "" {
		data["ref"] = b.Ref
	}

	d.appendEntity(at, length, Entity{Kind: KindButton, Data: data})
	return nil
}

// appendEntity adds the entity and a range pointing at it. Existing ranges and
// entities are never touched.
func (d *Document) appendEntity(at, length int, ent Entity) {
	d.Ranges = append(d.Ranges, EntityRange(at, length, len(d.Entities)))
	d.Entities = append(d.Entities, ent)
}

func putFileData(data map[string]any, mime string, bits []byte, name, ref string, size int) {
	if mime != "" {
		data["mime"] = mime
	}
	if bits != nil {
		data["val"] = bits
	}
	if name != "" {
		data["name"] = name
	}
	if ref != "" {
		data["ref"] = ref
	}
	if size > 0 {
		data["size"] = size
	}
}
