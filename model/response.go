package model

// BarcodeResponse describes a rendered image.
type BarcodeResponse struct {
	Success  bool   `json:"success"`
	Data     string `json:"data,omitempty"` // Encoded payload
	Format   string `json:"format"`
	Filename string `json:"filename"`
}
