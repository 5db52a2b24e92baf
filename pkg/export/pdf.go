package export

import (
	"bytes"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
)

// A4 portrait placement: the raster is scaled to the page width minus
// fixed side margins and placed below a fixed top offset.
const (
	pdfMarginSide = 16.0 // mm
	pdfMarginTop  = 18.0 // mm
)

// WritePDF rasterizes the card identically to the image export, scales
// the raster proportionally to the A4 page width and writes the
// document.
func WritePDF(w io.Writer, card *Card) error {
	img, err := card.Render(Scale)
	if err != nil {
		return goerr.Wrap(err, "failed to rasterize card")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return goerr.Wrap(err, "failed to encode raster")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	imgWidth := pageWidth - 2*pdfMarginSide

	bounds := img.Bounds()
	imgHeight := float64(bounds.Dy()) * imgWidth / float64(bounds.Dx())

	pdf.RegisterImageOptionsReader("card", fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	pdf.ImageOptions("card", pdfMarginSide, pdfMarginTop, imgWidth, imgHeight, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.Output(w); err != nil {
		return goerr.Wrap(err, "failed to write PDF")
	}
	return nil
}
