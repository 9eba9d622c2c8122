package assets

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test png: %v", err)
	}
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "earth_day.png"))

	m := NewManager(dir)
	defer m.Close()

	data, err := m.LoadTexture(TexEarthDay)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("loaded empty texture data")
	}

	// Second load hits the cache.
	if _, err := m.LoadTexture(TexEarthDay); err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if hits, _ := m.cache.Stats(); hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	m := NewManager(t.TempDir())
	defer m.Close()

	if _, err := m.LoadTexture(TexClouds); err == nil {
		t.Error("expected error for missing texture")
	}
}

func TestLoadTextureMissingDir(t *testing.T) {
	m := NewManager("/nonexistent/asset/dir")
	defer m.Close()

	if _, err := m.LoadTexture(TexEarthDay); err == nil {
		t.Error("expected error for missing asset dir")
	}
}

func TestLoadCoastline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coast.shp")

	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		t.Fatalf("creating shapefile: %v", err)
	}
	w.SetFields([]shp.Field{shp.StringField("NAME", 16)})
	line := shp.NewPolyLine([][]shp.Point{
		{{X: -10, Y: 50}, {X: 0, Y: 51}, {X: 10, Y: 52}},
	})
	w.Write(line)
	w.Close()

	verts, err := LoadCoastline(path, 100.0)
	if err != nil {
		t.Fatalf("LoadCoastline failed: %v", err)
	}
	// Two segments: 2 endpoints x 3 components each.
	if len(verts) != 12 {
		t.Fatalf("vertex count = %d, want 12", len(verts))
	}
	// Every endpoint sits on the sphere.
	for i := 0; i < len(verts); i += 3 {
		x, y, z := float64(verts[i]), float64(verts[i+1]), float64(verts[i+2])
		norm := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(norm-100.0) > 1e-3 {
			t.Errorf("endpoint %d norm = %v, want 100", i/3, norm)
		}
	}
}

func TestLoadCoastlineSkipsAntimeridianSpans(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seam.shp")

	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		t.Fatalf("creating shapefile: %v", err)
	}
	w.SetFields([]shp.Field{shp.StringField("NAME", 16)})
	line := shp.NewPolyLine([][]shp.Point{
		{{X: 179, Y: 10}, {X: -179, Y: 10}, {X: -170, Y: 11}},
	})
	w.Write(line)
	w.Close()

	verts, err := LoadCoastline(path, 100.0)
	if err != nil {
		t.Fatalf("LoadCoastline failed: %v", err)
	}
	// The 179 -> -179 span is only 2 degrees of real arc and is kept; both
	// segments survive. A span computed naively as 358 degrees would have
	// been dropped.
	if len(verts) != 12 {
		t.Errorf("vertex count = %d, want 12", len(verts))
	}
}

func TestLoadCoastlineMissing(t *testing.T) {
	if _, err := LoadCoastline("/nonexistent/coast.shp", 100); err == nil {
		t.Error("expected error for missing shapefile")
	}
}
