package ocr

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EnhanceImage applies a series of image processing operations to make a
// scanned document easier to recognize and writes the result to dstPath:
// grayscale for contrast, aggressive contrast boost, sharpening, a small
// brightness lift, and gamma correction to recover detail.
func EnhanceImage(srcPath, dstPath string) error {
	src, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustGamma(img, 1.2)

	if err := imaging.Save(img, dstPath); err != nil {
		return fmt.Errorf("failed to save processed image: %w", err)
	}
	return nil
}

// WriteDisplayImage creates a cropped and lightly enhanced rendition of the
// invoice for display alongside the scan result.
func WriteDisplayImage(srcPath, dstPath string) error {
	src, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}

	width := src.Bounds().Dx()
	height := src.Bounds().Dy()

	// Trim a fixed margin; scans tend to carry a dark border from the bed.
	topMargin := int(float64(height) * 0.05)
	bottomMargin := int(float64(height) * 0.05)
	leftMargin := int(float64(width) * 0.05)
	rightMargin := int(float64(width) * 0.05)

	cropped := imaging.Crop(src, image.Rect(leftMargin, topMargin, width-rightMargin, height-bottomMargin))

	img := imaging.AdjustContrast(cropped, 20)
	img = imaging.Sharpen(img, 1.0)
	img = imaging.AdjustBrightness(img, 5)

	if width > 1000 || height > 1000 {
		img = imaging.Fit(img, 1000, 1000, imaging.Lanczos)
	}

	return imaging.Save(img, dstPath)
}
