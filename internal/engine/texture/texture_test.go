package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 1, color.RGBA{R: 200, G: 50, B: 10, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("Decode() bounds = %v, want 4x2", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got.R != 200 || got.G != 50 || got.B != 10 {
		t.Errorf("Decode() pixel (1,1) = %v, want {200 50 10 255}", got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode() should fail on garbage data")
	}
}

func TestFallbacks(t *testing.T) {
	for name, img := range map[string]*image.RGBA{
		"day":    FallbackDay(),
		"night":  FallbackNight(),
		"clouds": FallbackClouds(),
	} {
		if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 256 {
			t.Errorf("%s fallback bounds = %v, want 512x256", name, img.Bounds())
		}
	}
}
