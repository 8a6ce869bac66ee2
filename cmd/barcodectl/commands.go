package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/exp/slices"
	"medical-barcode-api/catalog"
	"medical-barcode-api/model"
	"medical-barcode-api/render"
)

var sections = []string{"code128", "laetus", "swiss_medical", "ean13", "usage_notes"}

// Flags keep parse state, so every command gets its own instances.
func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write the PNG to this file (default: the descriptive filename in the current directory)",
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print a JSON description of the written file",
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "barcodectl",
		Usage: "Render medical barcodes to PNG files",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "dpi",
				Usage:   "Resolution of linear barcodes",
				Value:   render.DefaultDPI,
				Sources: cli.EnvVars("RENDER_DPI"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			render.Setup(render.Config{DPI: int(cmd.Int("dpi"))})
			return ctx, nil
		},
		Commands: []*cli.Command{
			code128Cmd(),
			laetusCmd(),
			swissMedicalCmd(),
			ean13Cmd(),
			examplesCmd(),
		},
	}
}

func code128Cmd() *cli.Command {
	return &cli.Command{
		Name:  "code128",
		Usage: "Encode text as a Code128 barcode",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Required: true, Usage: "Data to encode"},
			&cli.IntFlag{Name: "width", Value: model.DefaultCode128Width, Usage: "Bar width (1-10)"},
			&cli.IntFlag{Name: "height", Value: model.DefaultCode128Height, Usage: "Bar height in millimetres (10-100)"},
			outFlag(),
			jsonFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := model.NewCode128Request(cmd.String("data"), int(cmd.Int("width")), int(cmd.Int("height")))
			if err != nil {
				return err
			}
			img, err := render.Code128(r)
			return write(cmd, img, err)
		},
	}
}

func laetusCmd() *cli.Command {
	return &cli.Command{
		Name:  "laetus",
		Usage: "Encode a laboratory sample as LAB-PATIENT-SAMPLE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "patient-id", Required: true, Usage: "Patient identifier (A-Z, 0-9)"},
			&cli.StringFlag{Name: "sample-id", Required: true, Usage: "Sample identifier (A-Z, 0-9)"},
			&cli.StringFlag{Name: "lab-code", Value: model.DefaultLabCode, Usage: "Laboratory code (A-Z, 0-9)"},
			outFlag(),
			jsonFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := model.NewLaetusRequest(cmd.String("patient-id"), cmd.String("sample-id"), cmd.String("lab-code"))
			if err != nil {
				return err
			}
			img, err := render.Laetus(r)
			return write(cmd, img, err)
		},
	}
}

func swissMedicalCmd() *cli.Command {
	return &cli.Command{
		Name:  "swiss-medical",
		Usage: "Encode GS1 pack data as a QR code",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "gtin", Required: true, Usage: "14 digit GTIN"},
			&cli.StringFlag{Name: "lot", Required: true, Usage: "Lot number"},
			&cli.StringFlag{Name: "expiry", Required: true, Usage: "Expiry date, YYMMDD"},
			&cli.StringFlag{Name: "serial", Usage: "Serial number"},
			outFlag(),
			jsonFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := model.NewSwissMedicalRequest(cmd.String("gtin"), cmd.String("lot"), cmd.String("expiry"), cmd.String("serial"))
			if err != nil {
				return err
			}
			img, err := render.SwissMedical(r)
			return write(cmd, img, err)
		},
	}
}

func ean13Cmd() *cli.Command {
	return &cli.Command{
		Name:  "ean13",
		Usage: "Encode a 12 or 13 digit retail code",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Aliases: []string{"c"}, Required: true, Usage: "12 or 13 digits"},
			outFlag(),
			jsonFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := model.NewEAN13Request(cmd.String("code"))
			if err != nil {
				return err
			}
			img, err := render.EAN13(r)
			return write(cmd, img, err)
		},
	}
}

func examplesCmd() *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "Print the example catalog as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "only",
				Usage: fmt.Sprintf("Print a single section (one of: %s)", strings.Join(sections, ", ")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var v interface{} = catalog.Get()

			if only := cmd.String("only"); only != "" {
				if !slices.Contains(sections, only) {
					return fmt.Errorf("unknown section %q", only)
				}
				b, err := json.Marshal(v)
				if err != nil {
					return err
				}
				var all map[string]json.RawMessage
				if err := json.Unmarshal(b, &all); err != nil {
					return err
				}
				v = all[only]
			}

			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
}

func write(cmd *cli.Command, img *render.Image, err error) error {
	if err != nil {
		return err
	}

	path := cmd.String("out")
	if path == "" {
		path = img.Filename
	}

	if err := os.WriteFile(path, img.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if !cmd.Bool("json") {
		_, err = fmt.Fprintln(cmd.Root().Writer, path)
		return err
	}

	return json.NewEncoder(cmd.Root().Writer).Encode(model.BarcodeResponse{
		Success:  true,
		Data:     img.Payload,
		Format:   img.Format,
		Filename: filepath.Base(path),
	})
}
