package export

import (
	"image/png"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

// WriteImage rasterizes the card at the fixed scale and encodes it as
// PNG.
func WriteImage(w io.Writer, card *Card) error {
	img, err := card.Render(Scale)
	if err != nil {
		return goerr.Wrap(err, "failed to rasterize card")
	}
	if err := png.Encode(w, img); err != nil {
		return goerr.Wrap(err, "failed to encode PNG")
	}
	return nil
}
