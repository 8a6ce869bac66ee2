package handler

import (
	"github.com/gofiber/fiber/v2"
	"medical-barcode-api/model"
	"medical-barcode-api/render"
)

// GenerateCode128 godoc
// @Summary      Code128 barcode
// @Description  Encode arbitrary text as a Code128 barcode
// @Tags         generate
// @Produce      png
// @Param        data    query  string  true   "Data to encode"
// @Param        width   query  int     false  "Bar width (1-10)" default(2)
// @Param        height  query  int     false  "Bar height (10-100)" default(30)
// @Success      200  {file}    binary
// @Failure      400  {object}  model.ErrorResponse
// @Router       /generate/code128 [get]
func GenerateCode128(c *fiber.Ctx) error {
	r := model.DefaultCode128Request()
	if err := parseQuery(c, &r); err != nil {
		return sendError(c, render.PrefixCode128, err)
	}
	if err := r.Validate(); err != nil {
		return sendError(c, render.PrefixCode128, err)
	}

	img, err := render.Code128(&r)
	if err != nil {
		return sendError(c, render.PrefixCode128, err)
	}

	return sendImage(c, img)
}

// GenerateLaetus godoc
// @Summary      Laetus laboratory barcode
// @Description  Encode LAB-PATIENT-SAMPLE as a Code128 barcode
// @Tags         generate
// @Produce      png
// @Param        patient_id  query  string  true   "Patient identifier (A-Z, 0-9)"
// @Param        sample_id   query  string  true   "Sample identifier (A-Z, 0-9)"
// @Param        lab_code    query  string  false  "Laboratory code (A-Z, 0-9)" default(LAB)
// @Success      200  {file}    binary
// @Failure      400  {object}  model.ErrorResponse
// @Router       /generate/laetus [get]
func GenerateLaetus(c *fiber.Ctx) error {
	r := model.DefaultLaetusRequest()
	if err := parseQuery(c, &r); err != nil {
		return sendError(c, render.PrefixLaetus, err)
	}
	if err := r.Validate(); err != nil {
		return sendError(c, render.PrefixLaetus, err)
	}

	img, err := render.Laetus(&r)
	if err != nil {
		return sendError(c, render.PrefixLaetus, err)
	}

	return sendImage(c, img)
}

// GenerateSwissMedical godoc
// @Summary      Swiss medical code
// @Description  Encode a GS1 element string (GTIN, lot, expiry, serial) as a QR code
// @Tags         generate
// @Produce      png
// @Param        gtin    query  string  true   "14 digit GTIN"
// @Param        lot     query  string  true   "Lot number"
// @Param        expiry  query  string  true   "Expiry date, YYMMDD"
// @Param        serial  query  string  false  "Serial number"
// @Success      200  {file}    binary
// @Failure      400  {object}  model.ErrorResponse
// @Router       /generate/swiss-medical [get]
func GenerateSwissMedical(c *fiber.Ctx) error {
	var r model.SwissMedicalRequest
	if err := parseQuery(c, &r); err != nil {
		return sendError(c, render.PrefixSwissMedical, err)
	}
	if err := r.Validate(); err != nil {
		return sendError(c, render.PrefixSwissMedical, err)
	}

	img, err := render.SwissMedical(&r)
	if err != nil {
		return sendError(c, render.PrefixSwissMedical, err)
	}

	return sendImage(c, img)
}

// GenerateEAN13 godoc
// @Summary      EAN13 barcode
// @Description  Encode a 12 or 13 digit code; the check digit is always recalculated
// @Tags         generate
// @Produce      png
// @Param        code  query  string  true  "12 or 13 digits"
// @Success      200  {file}    binary
// @Failure      400  {object}  model.ErrorResponse
// @Router       /generate/ean13 [get]
func GenerateEAN13(c *fiber.Ctx) error {
	var r model.EAN13Request
	if err := parseQuery(c, &r); err != nil {
		return sendError(c, render.PrefixEAN13, err)
	}
	if err := r.Validate(); err != nil {
		return sendError(c, render.PrefixEAN13, err)
	}

	img, err := render.EAN13(&r)
	if err != nil {
		return sendError(c, render.PrefixEAN13, err)
	}

	return sendImage(c, img)
}
