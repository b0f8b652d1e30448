package ui

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "gaan-downloader.png"
)

// placeholderColor fills the thumbnail area until an image arrives
var placeholderColor = color.RGBA{R: 0xF6, G: 0xFD, B: 0xFF, A: 0xFF}

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderThumbnail renders a flat image of the thumbnail size
func PlaceholderThumbnail() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, int(ThumbnailWidth), int(ThumbnailHeight)))
	for y := range img.Rect.Dy() {
		for x := range img.Rect.Dx() {
			img.Set(x, y, placeholderColor)
		}
	}
	return img
}

// DecodeThumbnail decodes JPEG or PNG bytes; unsupported data yields nil
func DecodeThumbnail(data []byte) image.Image {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}
