package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"medical-barcode-api/helper"
)

const (
	DefaultDPI  = 300
	ContentType = "image/png"
)

// Display names used in error messages.
const (
	FormatCode128      = "Code128"
	FormatLaetus       = "Laetus"
	FormatSwissMedical = "Swiss Medical"
	FormatEAN13        = "EAN13"
)

// Filename prefixes.
const (
	PrefixCode128      = "code128"
	PrefixLaetus       = "laetus"
	PrefixSwissMedical = "swiss_medical"
	PrefixEAN13        = "ean13"
)

type Config struct {
	DPI int
}

var cfg = Config{DPI: DefaultDPI}

// Setup applies renderer settings. It must be called before the first
// request is served; a non-positive DPI keeps the default.
func Setup(c Config) {
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	cfg = c
}

// Error wraps a failure reported by a symbology library or the encoder.
type Error struct {
	Format string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error generating %s barcode: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Image is a rendered barcode ready to be sent.
type Image struct {
	Bytes              []byte
	Format             string // Filename prefix, e.g. swiss_medical
	Payload            string // Encoded string
	Filename           string
	ContentDisposition string
	ContentType        string
}

func encode(format, prefix, id, payload string, img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &Error{Format: format, Err: err}
	}

	disposition, filename := helper.ContentDisposition(prefix, id)

	return &Image{
		Bytes:              buf.Bytes(),
		Format:             prefix,
		Payload:            payload,
		Filename:           filename,
		ContentDisposition: disposition,
		ContentType:        ContentType,
	}, nil
}
