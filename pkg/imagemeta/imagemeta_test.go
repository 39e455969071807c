package imagemeta

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestProbe(t *testing.T) {
	t.Run("ReportsDimensions", func(t *testing.T) {
		w, h, err := Probe(pngBytes(t, 800, 600))
		if err != nil {
			t.Fatalf("Probe: %v", err)
		}
		if w != 800 || h != 600 {
			t.Fatalf("expected 800x600, got %dx%d", w, h)
		}
	})

	t.Run("CorruptBytes", func(t *testing.T) {
		if _, _, err := Probe([]byte("not an image at all")); err == nil {
			t.Fatal("expected error for corrupt bytes")
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		data := pngBytes(t, 100, 100)
		if _, _, err := Probe(data[:8]); err == nil {
			t.Fatal("expected error for truncated bytes")
		}
	})
}

func TestResize(t *testing.T) {
	t.Run("ExactTarget", func(t *testing.T) {
		out, err := Resize(pngBytes(t, 800, 600), 400, 300, "image/png")
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		img, err := imaging.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode resized output: %v", err)
		}
		if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
			t.Fatalf("expected 400x300, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("UnknownTypeFallsBackToPNG", func(t *testing.T) {
		out, err := Resize(pngBytes(t, 20, 20), 10, 10, "image/webp")
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		if _, err := png.Decode(bytes.NewReader(out)); err != nil {
			t.Fatalf("expected PNG output, decode failed: %v", err)
		}
	})

	t.Run("CorruptBytes", func(t *testing.T) {
		if _, err := Resize([]byte("garbage"), 10, 10, "image/png"); err == nil {
			t.Fatal("expected error for corrupt bytes")
		}
	})
}
