// Package text provides font loading, text measurement, and transformable
// labels for the slate framework.
//
// Shaping is done with go-text/typesetting's HarfBuzz implementation, so
// measurement accounts for kerning and ligatures.
package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	tslang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// Font is a parsed font file. One Font creates any number of Faces at
// different sizes. The parsed font data is read-only and safe to share;
// per-shaping state lives in the Face.
type Font struct {
	font *font.Font
}

// ParseFont parses TTF or OTF font data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("text: empty font data")
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Font{font: face.Font}, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return ParseFont(data)
}

// Face creates a face at the given size in pixels, shaping for the given
// language. Use language.Und for the default.
func (f *Font) Face(size float64, lang language.Tag) *Face {
	return &Face{font: f.font, size: size, lang: lang}
}

// Face is a font at a specific size. It is not safe for concurrent use:
// the underlying shaper keeps mutable state between calls.
type Face struct {
	font *font.Font
	size float64
	lang language.Tag

	shaper shaping.HarfbuzzShaper
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Measure shapes s and returns its advance width and line height in
// pixels. The empty string measures (0, lineHeight).
func (f *Face) Measure(s string) (w, h float64) {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  typesettingLanguage(f.lang),
	}
	out := f.shaper.Shape(input)

	var advance fixed.Int26_6
	for _, g := range out.Glyphs {
		advance += g.XAdvance
	}
	// LineBounds.Descent is negative (below the baseline).
	height := out.LineBounds.Ascent - out.LineBounds.Descent
	return fixedToFloat(advance), fixedToFloat(height)
}

// typesettingLanguage converts an x/text language tag to the shaper's
// language type. The undefined tag maps to English, matching the shaper's
// own default.
func typesettingLanguage(tag language.Tag) tslang.Language {
	if tag == language.Und {
		return tslang.NewLanguage("en")
	}
	return tslang.NewLanguage(tag.String())
}

// detectScript returns the script of the first non-space rune, defaulting
// to Latin. Mixed-script text should be split into runs before measuring.
func detectScript(runes []rune) tslang.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return tslang.LookupScript(r)
	}
	return tslang.Latin
}

// floatToFixed converts a float64 pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
