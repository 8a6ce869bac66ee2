package catalog

type Example struct {
	Url         string `json:"url"`
	Description string `json:"description"`
	ResultData  string `json:"result_data,omitempty"`
}

type Entry struct {
	Description string    `json:"description"`
	Endpoint    string    `json:"endpoint"`
	Format      string    `json:"format,omitempty"`
	Examples    []Example `json:"examples"`
	Notes       []string  `json:"notes,omitempty"`
}

type UsageNotes struct {
	ResponseFormat string `json:"response_format"`
	ContentType    string `json:"content_type"`
	ErrorHandling  string `json:"error_handling"`
	Filename       string `json:"filename"`
}

// Catalog documents every generation endpoint with working example URLs.
type Catalog struct {
	Code128      Entry      `json:"code128"`
	Laetus       Entry      `json:"laetus"`
	SwissMedical Entry      `json:"swiss_medical"`
	EAN13        Entry      `json:"ean13"`
	UsageNotes   UsageNotes `json:"usage_notes"`
}

// Get returns a fresh copy of the example catalog.
func Get() *Catalog {
	return &Catalog{
		Code128: Entry{
			Description: "Generate Code128 barcode for general medical use",
			Endpoint:    "/generate/code128",
			Examples: []Example{
				{
					Url:         "/generate/code128?data=MED123456&width=2&height=30",
					Description: "Basic medical item code",
				},
				{
					Url:         "/generate/code128?data=SAMPLE-2024-001&width=3&height=40",
					Description: "Sample tracking code with custom size",
				},
			},
		},
		Laetus: Entry{
			Description: "Generate Laetus-style laboratory barcode",
			Endpoint:    "/generate/laetus",
			Format:      "LAB-PATIENTID-SAMPLEID",
			Examples: []Example{
				{
					Url:         "/generate/laetus?patient_id=P001&sample_id=S123&lab_code=LAB",
					Description: "Standard lab sample barcode",
					ResultData:  "LAB-P001-S123",
				},
				{
					Url:         "/generate/laetus?patient_id=PATIENT456&sample_id=BLOOD001&lab_code=HEMA",
					Description: "Hematology lab sample",
					ResultData:  "HEMA-PATIENT456-BLOOD001",
				},
			},
		},
		SwissMedical: Entry{
			Description: "Generate Swiss Medical Code (GS1 compliant QR code)",
			Endpoint:    "/generate/swiss-medical",
			Format:      "(01)GTIN(10)LOT(17)EXPIRY(21)SERIAL",
			Examples: []Example{
				{
					Url:         "/generate/swiss-medical?gtin=07680001234567&lot=ABC123&expiry=251201",
					Description: "Basic pharmaceutical product code",
					ResultData:  "(01)07680001234567(10)ABC123(17)251201",
				},
				{
					Url:         "/generate/swiss-medical?gtin=07680009876543&lot=LOT456&expiry=241130&serial=SN789",
					Description: "Product with serial number",
					ResultData:  "(01)07680009876543(10)LOT456(17)241130(21)SN789",
				},
			},
			Notes: []string{
				"GTIN must be 14 digits",
				"Expiry date format: YYMMDD",
				"Serial number is optional",
			},
		},
		EAN13: Entry{
			Description: "Generate EAN13 barcode for medical products",
			Endpoint:    "/generate/ean13",
			Examples: []Example{
				{
					Url:         "/generate/ean13?code=4012345678901",
					Description: "13-digit EAN code",
				},
				{
					Url:         "/generate/ean13?code=401234567890",
					Description: "12-digit code (check digit calculated automatically)",
				},
			},
		},
		UsageNotes: UsageNotes{
			ResponseFormat: "All endpoints return PNG images",
			ContentType:    "image/png",
			ErrorHandling:  "Returns 400 status with error details for invalid input",
			Filename:       "Images include descriptive filenames in Content-Disposition header",
		},
	}
}
