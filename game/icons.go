package game

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
)

//go:embed assets/sun.svg
var sunSVGData []byte

//go:embed assets/moon.svg
var moonSVGData []byte

const iconSize = 16

// themeIcons holds the rasterised toggle icons
type themeIcons struct {
	sun  *ebiten.Image
	moon *ebiten.Image
}

// loadThemeIcons rasterises the embedded SVG icons at size x size pixels
func loadThemeIcons(size int, logger *zap.Logger) (*themeIcons, error) {
	sunImg, err := svgToImage(sunSVGData, size, size)
	if err != nil {
		return nil, err
	}
	moonImg, err := svgToImage(moonSVGData, size, size)
	if err != nil {
		return nil, err
	}

	// Optionally save PNGs for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(sunImg, "debug_sun.png", logger)
		saveDebugPNG(moonImg, "debug_moon.png", logger)
	}

	return &themeIcons{
		sun:  ebiten.NewImageFromImage(sunImg),
		moon: ebiten.NewImageFromImage(moonImg),
	}, nil
}

// svgToImage rasterises SVG data into a width x height RGBA image
func svgToImage(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func saveDebugPNG(img image.Image, filename string, logger *zap.Logger) {
	f, err := os.Create(filename)
	if err != nil {
		logger.Warn("failed to create debug PNG", zap.String("file", filename), zap.Error(err))
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logger.Warn("failed to encode debug PNG", zap.String("file", filename), zap.Error(err))
	}
}
