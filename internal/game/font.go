package game

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas geometry: printable ASCII from basicfont's 7x13 face, packed
// into a FontCols-wide grid of FontCellW x FontCellH cells.
const (
	FontFirst  = ' '
	FontLast   = '~'
	FontCols   = 16
	FontCellW  = 7
	FontCellH  = 13
	FontGlyphs = FontLast - FontFirst + 1
	FontRows   = (FontGlyphs + FontCols - 1) / FontCols
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// BuildFontAtlas rasterizes face's ASCII glyphs into a single-channel
// coverage image laid out as described by the Font* constants.
func BuildFontAtlas(face font.Face) *image.Alpha {
	atlas := image.NewAlpha(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	ascent := face.Metrics().Ascent
	for ch := rune(FontFirst); ch <= FontLast; ch++ {
		col, row := glyphCell(ch)
		dot := fixed.Point26_6{
			X: fixed.I(col * FontCellW),
			Y: fixed.I(row*FontCellH) + ascent,
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, ch)
		if !ok {
			continue
		}
		draw.Draw(atlas, dr, mask, maskp, draw.Src)
	}
	return atlas
}

func defaultFontAtlas() *image.Alpha { return BuildFontAtlas(basicfont.Face7x13) }

// glyphCell returns the atlas grid cell for ch, which must be printable ASCII.
func glyphCell(ch rune) (col, row int) {
	i := int(ch - FontFirst)
	return i % FontCols, i / FontCols
}

// glyphUV returns the texture coordinates of ch's cell.
func glyphUV(ch rune) (u0, v0, u1, v1 float32) {
	col, row := glyphCell(ch)
	u0 = float32(col*FontCellW) / float32(FontAtlasW)
	v0 = float32(row*FontCellH) / float32(FontAtlasH)
	u1 = float32((col+1)*FontCellW) / float32(FontAtlasW)
	v1 = float32((row+1)*FontCellH) / float32(FontAtlasH)
	return
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}
