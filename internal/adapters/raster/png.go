// Package raster exports scenes as PNG images.
package raster

import (
	"context"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	nameSize     = 22.0
	roleSize     = 18.0
	nameTop      = 5.0
	roleTop      = 35.0
	lineWidth    = 2.0
	cornerRadius = 6.0

	defaultBackground = "white"
	defaultMargin     = 20.0
)

// PNGExporter draws connectors first and node cards on top, mirroring the surface's z-order.
// Hidden primitives are skipped.
type PNGExporter struct {
	name *truetype.Font
	role *truetype.Font
}

// New parses the embedded Go fonts.
func New() (*PNGExporter, error) {
	name, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	role, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return &PNGExporter{name: name, role: role}, nil
}

var _ ports.Exporter = (*PNGExporter)(nil)

// ContentType is the media type of the exported image.
func (e *PNGExporter) ContentType() string {
	return "image/png"
}

// Export renders scene into w. A scene without visible nodes fails with ErrEmptyScene.
func (e *PNGExporter) Export(ctx context.Context, scene *domain.Scene, w io.Writer) error {
	if !scene.Visible() {
		return domain.ErrEmptyScene
	}

	margin := scene.Margin
	if margin <= 0 {
		margin = defaultMargin
	}
	background := scene.Background
	if background == "" {
		background = defaultBackground
	}

	minPt, maxPt := scene.Bounds()
	for _, l := range scene.Lines {
		if l.Opacity <= domain.Hidden {
			continue
		}
		minPt.X = math.Min(minPt.X, math.Min(l.X1, l.X2))
		minPt.Y = math.Min(minPt.Y, math.Min(l.Y1, l.Y2))
		maxPt.X = math.Max(maxPt.X, math.Max(l.X1, l.X2))
		maxPt.Y = math.Max(maxPt.Y, math.Max(l.Y1, l.Y2))
	}

	width := int(math.Ceil(maxPt.X-minPt.X+2*margin))
	height := int(math.Ceil(maxPt.Y-minPt.Y+2*margin))
	dx, dy := margin-minPt.X, margin-minPt.Y

	dc := gg.NewContext(width, height)
	dc.SetColor(parseColor(background, color.White))
	dc.Clear()

	dc.SetLineWidth(lineWidth)
	for _, l := range scene.Lines {
		if l.Opacity <= domain.Hidden {
			continue
		}
		dc.SetColor(fade(color.Black, l.Opacity))
		dc.DrawLine(l.X1+dx, l.Y1+dy, l.X2+dx, l.Y2+dy)
		dc.Stroke()
	}

	nameFace := truetype.NewFace(e.name, &truetype.Options{Size: nameSize, DPI: 72, Hinting: font.HintingFull})
	roleFace := truetype.NewFace(e.role, &truetype.Options{Size: roleSize, DPI: 72, Hinting: font.HintingFull})
	defer func() {
		_ = nameFace.Close()
		_ = roleFace.Close()
	}()

	for _, n := range scene.Nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n.Opacity <= domain.Hidden {
			continue
		}
		x, y := n.Left+dx, n.Top+dy

		dc.SetColor(fade(parseColor(n.Visual.Fill, colornames.Slategray), n.Opacity))
		dc.DrawRoundedRectangle(x, y, n.Width, n.Height, cornerRadius)
		dc.Fill()

		dc.SetColor(fade(color.White, n.Opacity))
		dc.SetFontFace(nameFace)
		dc.DrawStringAnchored(n.Visual.Name, x+n.Width/2, y+nameTop, 0.5, 1)
		dc.SetFontFace(roleFace)
		dc.DrawStringAnchored(n.Visual.Role, x+n.Width/2, y+roleTop, 0.5, 1)
	}

	if err := dc.EncodePNG(w); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

// parseColor understands CSS color names and #rgb/#rrggbb hex values.
func parseColor(s string, fallback color.Color) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return fallback
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return fallback
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// fade scales c's alpha by opacity.
func fade(c color.Color, opacity float64) color.Color {
	if opacity >= domain.Visible {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(float64(a) * opacity),
	}
}
