package texture

import (
	"image"
	"image/color"
	"math"
)

// Fallback texture generation. Asset loading must never be fatal: when a
// map image is missing, the globe still renders with these procedural
// placeholders.

const (
	fallbackWidth  = 512
	fallbackHeight = 256
)

// FallbackDay generates a banded ocean-and-landmass placeholder for the
// daytime map.
func FallbackDay() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fallbackWidth, fallbackHeight))
	for y := 0; y < fallbackHeight; y++ {
		lat := 90.0 - 180.0*float64(y)/float64(fallbackHeight)
		for x := 0; x < fallbackWidth; x++ {
			lon := 360.0*float64(x)/float64(fallbackWidth) - 180.0

			// Blotchy "land" from low-frequency sinusoids.
			land := math.Sin(lon*0.045+1.3)*math.Cos(lat*0.07) +
				0.6*math.Sin(lon*0.11)*math.Sin(lat*0.05+0.8)

			var c color.RGBA
			if land > 0.55 && math.Abs(lat) < 70 {
				c = color.RGBA{R: 82, G: 120, B: 66, A: 255}
			} else {
				depth := uint8(60 + 40*math.Cos(lat*0.017))
				c = color.RGBA{R: 18, G: depth, B: 120, A: 255}
			}
			// Ice caps.
			if math.Abs(lat) > 74 {
				c = color.RGBA{R: 225, G: 232, B: 238, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// FallbackNight generates a dark placeholder with sparse light speckles.
func FallbackNight() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fallbackWidth, fallbackHeight))
	for y := 0; y < fallbackHeight; y++ {
		for x := 0; x < fallbackWidth; x++ {
			c := color.RGBA{R: 4, G: 5, B: 12, A: 255}
			// Deterministic speckle pattern standing in for city lights.
			h := uint32(x*73856093) ^ uint32(y*19349663)
			if h%997 < 2 && y > fallbackHeight/6 && y < 5*fallbackHeight/6 {
				c = color.RGBA{R: 210, G: 190, B: 120, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// FallbackClouds generates a soft translucent noise layer.
func FallbackClouds() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fallbackWidth, fallbackHeight))
	for y := 0; y < fallbackHeight; y++ {
		fy := float64(y) / fallbackHeight
		for x := 0; x < fallbackWidth; x++ {
			fx := float64(x) / fallbackWidth
			n := 0.5*math.Sin(fx*19.0+fy*7.0) +
				0.3*math.Sin(fx*41.0-fy*23.0) +
				0.2*math.Sin(fx*9.0*math.Pi)*math.Cos(fy*11.0)
			a := uint8(0)
			if n > 0.25 {
				v := (n - 0.25) / 0.75
				if v > 1 {
					v = 1
				}
				a = uint8(v * 180)
			}
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return img
}
