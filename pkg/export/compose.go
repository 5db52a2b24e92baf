package export

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Card layout constants in logical units; rendering multiplies them by
// the raster scale.
const (
	cardWidth     = 700.0
	paddingTop    = 48.0
	paddingSide   = 40.0
	paddingBottom = 64.0

	titleSize = 24.0
	metaSize  = 14.0
	bodySize  = 18.0

	bodyLineHeight = 1.7

	// Scale is the fixed pixel-density multiplier for rasterization.
	Scale = 2.0
)

// Card is the offscreen presentation fragment built from a dua: a title,
// a metadata line and the body text with preserved paragraph breaks.
type Card struct {
	Title string
	Meta  string
	Body  string
}

// Compose builds the presentation fragment for a saved or in-progress
// dua.
func Compose(dua *model.Dua) *Card {
	style := string(dua.Style)
	if style != "" {
		style = strings.ToUpper(style[:1]) + style[1:]
	}

	return &Card{
		Title: "Duʿāʾ",
		Meta:  fmt.Sprintf("%s / %s / %s", style, dua.Topic, dua.CreatedAt.Format("02.01.2006")),
		Body:  dua.Text,
	}
}

// Filename names an export file from the fixed prefix, the topic and a
// YYYYMMDDHHmm timestamp.
func Filename(topic model.Topic, t time.Time, ext string) string {
	return fmt.Sprintf("DuaMind_%s_%s.%s", topic, t.Format("200601021504"), ext)
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse font")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create font face")
	}
	return face, nil
}

// Render rasterizes the card at the given scale into an image. The card
// height grows with the body text.
func (c *Card) Render(scale float64) (image.Image, error) {
	titleFace, err := loadFace(gobold.TTF, titleSize*scale)
	if err != nil {
		return nil, err
	}
	metaFace, err := loadFace(goregular.TTF, metaSize*scale)
	if err != nil {
		return nil, err
	}
	bodyFace, err := loadFace(goregular.TTF, bodySize*scale)
	if err != nil {
		return nil, err
	}

	width := cardWidth * scale
	textWidth := width - 2*paddingSide*scale

	// Wrap the body with the real face before sizing the canvas
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(bodyFace)
	lines := wrapBody(measure, c.Body, textWidth)

	titleBlock := (titleSize*1.3 + 16 + 16) * scale // text, rule paddings, margin below
	metaBlock := (metaSize + 24) * scale
	bodyBlock := float64(len(lines)) * bodySize * bodyLineHeight * scale
	height := paddingTop*scale + titleBlock + metaBlock + bodyBlock + paddingBottom*scale

	dc := gg.NewContext(int(width), int(height))
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	x := paddingSide * scale
	y := paddingTop * scale

	// Title with a rule below it
	dc.SetFontFace(titleFace)
	dc.SetHexColor("#2F6B5A")
	y += titleSize * scale
	dc.DrawString(c.Title, x, y)
	y += 12 * scale
	dc.SetHexColor("#E0E0E0")
	dc.SetLineWidth(1 * scale)
	dc.DrawLine(x, y, width-paddingSide*scale, y)
	dc.Stroke()
	y += 20 * scale

	// Metadata line
	dc.SetFontFace(metaFace)
	dc.SetHexColor("#777777")
	y += metaSize * scale
	dc.DrawString(c.Meta, x, y)
	y += 24 * scale

	// Body with line breaks converted to visual breaks
	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#222222")
	for _, line := range lines {
		y += bodySize * bodyLineHeight * scale
		if line != "" {
			dc.DrawString(line, x, y)
		}
	}

	return dc.Image(), nil
}

// wrapBody splits the text on its embedded line breaks and word-wraps
// each paragraph line to the card width. Empty lines survive as vertical
// gaps.
func wrapBody(dc *gg.Context, body string, width float64) []string {
	var lines []string
	for _, raw := range strings.Split(body, "\n") {
		if strings.TrimSpace(raw) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, dc.WordWrap(raw, width)...)
	}
	return lines
}
