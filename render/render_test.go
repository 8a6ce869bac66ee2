package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"medical-barcode-api/model"
)

var pngSignature = []byte("\x89PNG")

func TestCode128(t *testing.T) {
	r, err := model.NewCode128Request("MED123456", 2, 30)
	require.NoError(t, err)

	img, err := Code128(r)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(img.Bytes, pngSignature))
	assert.Equal(t, ContentType, img.ContentType)
	assert.Equal(t, "code128_MED123456.png", img.Filename)
	assert.Equal(t, `inline; filename="code128_MED123456.png"`, img.ContentDisposition)
	assert.Equal(t, "MED123456", img.Payload)

	decoded, err := png.Decode(bytes.NewReader(img.Bytes))
	require.NoError(t, err)
	// 30 mm of bars at 300 dpi
	assert.Greater(t, decoded.Bounds().Dy(), 354)
}

func TestCode128Width(t *testing.T) {
	narrow, err := model.NewCode128Request("MED123456", 1, 30)
	require.NoError(t, err)
	wide, err := model.NewCode128Request("MED123456", 10, 30)
	require.NoError(t, err)

	a, err := Code128(narrow)
	require.NoError(t, err)
	b, err := Code128(wide)
	require.NoError(t, err)

	da, err := png.Decode(bytes.NewReader(a.Bytes))
	require.NoError(t, err)
	db, err := png.Decode(bytes.NewReader(b.Bytes))
	require.NoError(t, err)

	assert.Greater(t, db.Bounds().Dx(), da.Bounds().Dx())
}

func TestCode128Unencodable(t *testing.T) {
	r, err := model.NewCode128Request("MED€", 2, 30)
	require.NoError(t, err)

	img, err := Code128(r)
	assert.Nil(t, img)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, FormatCode128, rerr.Format)
	assert.True(t, strings.HasPrefix(err.Error(), "Error generating Code128 barcode: "))
}

func TestLaetus(t *testing.T) {
	r, err := model.NewLaetusRequest("P001", "S123", "")
	require.NoError(t, err)

	img, err := Laetus(r)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(img.Bytes, pngSignature))
	assert.Equal(t, "LAB-P001-S123", img.Payload)
	assert.Equal(t, "laetus_LAB-P001-S123.png", img.Filename)
}

func TestSwissMedical(t *testing.T) {
	r, err := model.NewSwissMedicalRequest("07680001234567", "ABC123", "251201", "")
	require.NoError(t, err)

	img, err := SwissMedical(r)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(img.Bytes, pngSignature))
	assert.Equal(t, "(01)07680001234567(10)ABC123(17)251201", img.Payload)
	assert.Equal(t, "swiss_medical_07680001234567.png", img.Filename)

	decoded, err := png.Decode(bytes.NewReader(img.Bytes))
	require.NoError(t, err)
	assert.Equal(t, decoded.Bounds().Dx(), decoded.Bounds().Dy())
	assert.Zero(t, decoded.Bounds().Dx()%qrBoxSize)
}

func TestSwissMedicalGrows(t *testing.T) {
	short, err := model.NewSwissMedicalRequest("07680001234567", "A", "251201", "")
	require.NoError(t, err)
	long, err := model.NewSwissMedicalRequest("07680001234567", strings.Repeat("L", 60), "251201", strings.Repeat("S", 60))
	require.NoError(t, err)

	a, err := SwissMedical(short)
	require.NoError(t, err)
	b, err := SwissMedical(long)
	require.NoError(t, err)

	da, err := png.Decode(bytes.NewReader(a.Bytes))
	require.NoError(t, err)
	db, err := png.Decode(bytes.NewReader(b.Bytes))
	require.NoError(t, err)
	assert.Greater(t, db.Bounds().Dx(), da.Bounds().Dx())
}

func TestSwissMedicalTooLong(t *testing.T) {
	// lowercase forces byte mode, which holds at most 2953 bytes at level L
	r, err := model.NewSwissMedicalRequest("07680001234567", strings.Repeat("l", 4000), "251201", "")
	require.NoError(t, err)

	img, err := SwissMedical(r)
	assert.Nil(t, img)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, FormatSwissMedical, rerr.Format)
	assert.True(t, strings.HasPrefix(err.Error(), "Error generating Swiss Medical barcode: "))
}

func TestSwissMedicalAlphanumericFits(t *testing.T) {
	// uppercase uses alphanumeric mode, which holds up to 4296 characters
	r, err := model.NewSwissMedicalRequest("07680001234567", strings.Repeat("L", 4000), "251201", "")
	require.NoError(t, err)

	img, err := SwissMedical(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img.Bytes, pngSignature))
}

func TestEAN13(t *testing.T) {
	twelve, err := model.NewEAN13Request("401234567890")
	require.NoError(t, err)
	thirteen, err := model.NewEAN13Request("4012345678909")
	require.NoError(t, err)

	a, err := EAN13(twelve)
	require.NoError(t, err)
	b, err := EAN13(thirteen)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(a.Bytes, pngSignature))
	// the supplied check digit is dropped, so both render the same symbol
	assert.Equal(t, a.Bytes, b.Bytes)
	assert.Equal(t, "ean13_401234567890.png", a.Filename)
	assert.Equal(t, "ean13_4012345678909.png", b.Filename)
}

func TestFilenameSanitized(t *testing.T) {
	r, err := model.NewCode128Request("A\"\r\nB", 2, 30)
	require.NoError(t, err)

	img, err := Code128(r)
	if err != nil {
		// control characters are outside the code sets of some encoders
		var rerr *Error
		require.True(t, errors.As(err, &rerr))
		return
	}
	assert.Equal(t, "code128_A___B.png", img.Filename)
	assert.NotContains(t, img.ContentDisposition, "\r")
}

func TestSetup(t *testing.T) {
	defer Setup(Config{})

	Setup(Config{DPI: 0})
	assert.Equal(t, DefaultDPI, cfg.DPI)

	Setup(Config{DPI: 150})
	assert.Equal(t, 150, cfg.DPI)

	r, err := model.NewCode128Request("MED123456", 2, 30)
	require.NoError(t, err)
	low, err := Code128(r)
	require.NoError(t, err)

	Setup(Config{DPI: 600})
	high, err := Code128(r)
	require.NoError(t, err)

	dl, err := png.Decode(bytes.NewReader(low.Bytes))
	require.NoError(t, err)
	dh, err := png.Decode(bytes.NewReader(high.Bytes))
	require.NoError(t, err)
	assert.Greater(t, dh.Bounds().Dy(), dl.Bounds().Dy())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("checksum mismatch")
	err := &Error{Format: FormatEAN13, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error generating EAN13 barcode: checksum mismatch", err.Error())
}
