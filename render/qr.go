package render

import (
	"image"
	"image/draw"

	"github.com/skip2/go-qrcode"
)

const (
	qrBoxSize = 4 // pixels per module
	qrBorder  = 2 // modules
)

// paintQR encodes payload at the lowest error correction level. The library
// picks the smallest version that holds the payload.
func paintQR(payload string) (image.Image, error) {
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true

	bitmap := q.Bitmap()
	size := (len(bitmap) + 2*qrBorder) * qrBoxSize

	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}
			x0 := (x + qrBorder) * qrBoxSize
			y0 := (y + qrBorder) * qrBoxSize
			draw.Draw(img, image.Rect(x0, y0, x0+qrBoxSize, y0+qrBoxSize), image.Black, image.Point{}, draw.Src)
		}
	}

	return img, nil
}
