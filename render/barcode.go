package render

import (
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/sirupsen/logrus"
	"medical-barcode-api/model"
)

// Linear layouts in millimetres and points.
var (
	laetusWriter = newWriter(0.2, 15, 10)
	ean13Writer  = newWriter(0.33, 25, 12)
)

func Code128(r *model.Code128Request) (*Image, error) {
	w := newWriter(r.ModuleWidth(), float64(r.Height), 10)
	return linear(FormatCode128, PrefixCode128, r.Data, r.Data, w, code128.Encode)
}

func Laetus(r *model.LaetusRequest) (*Image, error) {
	payload := r.Payload()
	return linear(FormatLaetus, PrefixLaetus, payload, payload, laetusWriter, code128.Encode)
}

// EAN13 encodes the first twelve digits; the library appends the check digit.
func EAN13(r *model.EAN13Request) (*Image, error) {
	return linear(FormatEAN13, PrefixEAN13, r.Code, r.Payload(), ean13Writer, ean.Encode)
}

func SwissMedical(r *model.SwissMedicalRequest) (*Image, error) {
	payload := r.Payload()

	img, err := paintQR(payload)
	if err != nil {
		return nil, &Error{Format: FormatSwissMedical, Err: err}
	}

	logrus.Debugf("rendered %s", FormatSwissMedical)
	return encode(FormatSwissMedical, PrefixSwissMedical, r.Gtin, payload, img)
}

func linear(format, prefix, id, payload string, w writer, enc func(string) (barcode.BarcodeIntCS, error)) (*Image, error) {
	bc, err := enc(payload)
	if err != nil {
		return nil, &Error{Format: format, Err: err}
	}

	img, err := w.paint(bc, bc.Content(), cfg.DPI)
	if err != nil {
		return nil, &Error{Format: format, Err: err}
	}

	logrus.Debugf("rendered %s", format)
	return encode(format, prefix, id, payload, img)
}
