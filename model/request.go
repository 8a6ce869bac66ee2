package model

import (
	"strings"

	"medical-barcode-api/validation"
)

const (
	DefaultCode128Width  = 2
	DefaultCode128Height = 30
	DefaultLabCode       = "LAB"
)

// Code128Request encodes caller-supplied text as Code128.
type Code128Request struct {
	Data   string `query:"data" json:"data" validate:"required"`           // Data to encode
	Width  int    `query:"width" json:"width" validate:"gte=1,lte=10"`     // Bar width, tenths of a millimetre per module
	Height int    `query:"height" json:"height" validate:"gte=10,lte=100"` // Bar height in millimetres
}

// LaetusRequest identifies a laboratory sample.
type LaetusRequest struct {
	PatientId string `query:"patient_id" json:"patient_id" validate:"required,upperalnum"`
	SampleId  string `query:"sample_id" json:"sample_id" validate:"required,upperalnum"`
	LabCode   string `query:"lab_code" json:"lab_code" validate:"required,upperalnum"`
}

// SwissMedicalRequest carries the GS1 fields of a pharmaceutical pack.
type SwissMedicalRequest struct {
	Gtin   string `query:"gtin" json:"gtin" validate:"required,len=14,digits"`
	Lot    string `query:"lot" json:"lot" validate:"required"`
	Expiry string `query:"expiry" json:"expiry" validate:"required,len=6,digits"` // YYMMDD, not checked against the calendar
	Serial string `query:"serial" json:"serial"`                                  // Optional
}

// EAN13Request holds a 12 or 13 digit retail code.
type EAN13Request struct {
	Code string `query:"code" json:"code" validate:"required,ean13"`
}

// DefaultCode128Request returns a request with the documented defaults,
// ready to be filled from a query string.
func DefaultCode128Request() Code128Request {
	return Code128Request{Width: DefaultCode128Width, Height: DefaultCode128Height}
}

func DefaultLaetusRequest() LaetusRequest {
	return LaetusRequest{LabCode: DefaultLabCode}
}

func NewCode128Request(data string, width, height int) (*Code128Request, error) {
	r := Code128Request{Data: data, Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// NewLaetusRequest validates the three sample fields. An empty labCode
// selects DefaultLabCode.
func NewLaetusRequest(patientId, sampleId, labCode string) (*LaetusRequest, error) {
	if labCode == "" {
		labCode = DefaultLabCode
	}
	r := LaetusRequest{PatientId: patientId, SampleId: sampleId, LabCode: labCode}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func NewSwissMedicalRequest(gtin, lot, expiry, serial string) (*SwissMedicalRequest, error) {
	r := SwissMedicalRequest{Gtin: gtin, Lot: lot, Expiry: expiry, Serial: serial}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func NewEAN13Request(code string) (*EAN13Request, error) {
	r := EAN13Request{Code: code}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Code128Request) Validate() error {
	return validationError(validation.Struct(r))
}

func (r *LaetusRequest) Validate() error {
	return validationError(validation.Struct(r))
}

func (r *SwissMedicalRequest) Validate() error {
	return validationError(validation.Struct(r))
}

func (r *EAN13Request) Validate() error {
	return validationError(validation.Struct(r))
}

// ModuleWidth is the narrowest bar in millimetres.
func (r *Code128Request) ModuleWidth() float64 {
	return float64(r.Width) / 10
}

// Payload joins lab code, patient and sample with hyphens. The fields are
// uppercase alphanumeric, so the separator is unambiguous.
func (r *LaetusRequest) Payload() string {
	return r.LabCode + "-" + r.PatientId + "-" + r.SampleId
}

// Payload builds the GS1 element string (01)GTIN(10)LOT(17)EXPIRY[(21)SERIAL].
func (r *SwissMedicalRequest) Payload() string {
	var b strings.Builder
	b.WriteString("(01)")
	b.WriteString(r.Gtin)
	b.WriteString("(10)")
	b.WriteString(r.Lot)
	b.WriteString("(17)")
	b.WriteString(r.Expiry)
	if r.Serial != "" {
		b.WriteString("(21)")
		b.WriteString(r.Serial)
	}
	return b.String()
}

// Payload drops a supplied check digit; the symbology computes its own.
func (r *EAN13Request) Payload() string {
	if len(r.Code) > 12 {
		return r.Code[:12]
	}
	return r.Code
}
