package ocr

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()
	img := imaging.New(w, h, color.White)
	path := filepath.Join(t.TempDir(), "in.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnhanceImage(t *testing.T) {
	src := writeTestImage(t, 200, 120)
	dst := filepath.Join(t.TempDir(), "out.jpg")

	if err := EnhanceImage(src, dst); err != nil {
		t.Fatalf("EnhanceImage: %v", err)
	}

	out, err := imaging.Open(dst)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 120 {
		t.Errorf("enhancement must not change dimensions, got %v", out.Bounds())
	}
}

func TestEnhanceImageMissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.jpg")
	if err := EnhanceImage(filepath.Join(t.TempDir(), "missing.png"), dst); err == nil {
		t.Fatal("expected an error for a missing source image")
	}
}

func TestWriteDisplayImageResizesLargeScans(t *testing.T) {
	src := writeTestImage(t, 1600, 1200)
	dst := filepath.Join(t.TempDir(), "display.jpg")

	if err := WriteDisplayImage(src, dst); err != nil {
		t.Fatalf("WriteDisplayImage: %v", err)
	}

	out, err := imaging.Open(dst)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	if out.Bounds().Dx() > 1000 || out.Bounds().Dy() > 1000 {
		t.Errorf("display rendition not resized, got %v", out.Bounds())
	}
}
