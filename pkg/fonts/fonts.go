// Package fonts provides font faces for raster rendering.
//
// The Go font family is compiled into the binary through
// golang.org/x/image/font/gofont, so PNG output needs no system fonts.
// Parsed fonts are cached; faces are cheap to create per size.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Parsed fonts, computed once on first access.
var (
	regular, bold *truetype.Font
	parseErr      error
	parseOnce     sync.Once
)

func parse() error {
	parseOnce.Do(func() {
		if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse go regular: %w", parseErr)
			return
		}
		if bold, parseErr = truetype.Parse(gobold.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse go bold: %w", parseErr)
		}
	})
	return parseErr
}

// Face returns a face of the Go font at size pixels (72 DPI, so points and
// pixels coincide).
func Face(size float64, isBold bool) (font.Face, error) {
	if err := parse(); err != nil {
		return nil, err
	}
	f := regular
	if isBold {
		f = bold
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
