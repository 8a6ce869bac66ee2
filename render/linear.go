package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/boombuler/barcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	quietZoneMM    = 6.5
	marginMM       = 1.0
	textDistanceMM = 5.0
)

// writer holds the layout of a linear symbol, in millimetres and points.
type writer struct {
	ModuleWidth  float64
	ModuleHeight float64
	FontSize     float64
	TextDistance float64
	QuietZone    float64
	Margin       float64
}

func newWriter(moduleWidth, moduleHeight, fontSize float64) writer {
	return writer{
		ModuleWidth:  moduleWidth,
		ModuleHeight: moduleHeight,
		FontSize:     fontSize,
		TextDistance: textDistanceMM,
		QuietZone:    quietZoneMM,
		Margin:       marginMM,
	}
}

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// parsed fonts are safe for concurrent use; faces are not, so each render
// opens its own.
func loadFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

func pixels(mm float64, dpi int) int {
	return int(math.Round(mm * float64(dpi) / 25.4))
}

// paint lays the modules of a one-dimensional symbol out at dpi and prints
// text centred below the bars.
func (w writer) paint(bc barcode.Barcode, text string, dpi int) (image.Image, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    w.FontSize,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	var (
		modules   = bc.Bounds().Dx()
		modulePx  = max(1, pixels(w.ModuleWidth, dpi))
		quiet     = pixels(w.QuietZone, dpi)
		margin    = pixels(w.Margin, dpi)
		barHeight = max(1, pixels(w.ModuleHeight, dpi))
	)

	d := &font.Drawer{Src: image.Black, Face: face}
	textWidth := d.MeasureString(text).Ceil()

	width := max(2*quiet+modules*modulePx, textWidth+2*quiet)
	baseline := margin + barHeight + pixels(w.TextDistance, dpi)
	height := baseline + face.Metrics().Descent.Ceil() + margin

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	left := (width - modules*modulePx) / 2
	for x := 0; x < modules; x++ {
		if !dark(bc.At(bc.Bounds().Min.X+x, bc.Bounds().Min.Y)) {
			continue
		}
		bar := image.Rect(left+x*modulePx, margin, left+(x+1)*modulePx, margin+barHeight)
		draw.Draw(img, bar, image.Black, image.Point{}, draw.Src)
	}

	d.Dst = img
	d.Dot = fixed.P((width-textWidth)/2, baseline)
	d.DrawString(text)

	return img, nil
}

func dark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}
