//go:build !headless

package gui

import (
	"image/color"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fonts fall back to the raylib default when the files are absent.
var (
	uiFont     rl.Font
	uiFontBold rl.Font
	uiFontMono rl.Font
)

const (
	fontRegular = "assets/fonts/Outfit-Regular.ttf"
	fontBold    = "assets/fonts/Outfit-Bold.ttf"
	fontMono    = "assets/fonts/JetBrainsMono-Regular.ttf"
)

// Indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorBgMap     = rl.NewColor(14, 14, 20, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSeparator = rl.NewColor(40, 40, 55, 255)
	colorSelection = rl.NewColor(108, 99, 255, 60)

	colorOK    = rl.NewColor(100, 220, 100, 255)
	colorError = rl.NewColor(255, 120, 120, 255)
)

func initStyle() {
	uiFont = loadFont(fontRegular)
	if uiFont.Texture.ID > 0 {
		gui.SetFont(uiFont)
	}
	uiFontBold = loadFont(fontBold)
	uiFontMono = loadFont(fontMono)

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorSeparator))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func loadFont(path string) rl.Font {
	if !rl.FileExists(path) {
		log.Printf("Font %s not found, using default", path)
		return rl.Font{}
	}
	f := rl.LoadFontEx(path, 48, nil)
	if f.Texture.ID > 0 {
		rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	}
	return f
}

func unloadFonts() {
	for _, f := range []rl.Font{uiFont, uiFontBold, uiFontMono} {
		if f.Texture.ID > 0 {
			rl.UnloadFont(f)
		}
	}
}

// drawText draws text using the specified font scaled to the requested size
func drawText(font rl.Font, text string, x, y int32, size float32, c rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, c)
	} else {
		rl.DrawText(text, x, y, int32(size), c)
	}
}

func measureText(font rl.Font, text string, size float32) int32 {
	if font.Texture.ID > 0 {
		return int32(rl.MeasureTextEx(font, text, size, 0).X)
	}
	return rl.MeasureText(text, int32(size))
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
