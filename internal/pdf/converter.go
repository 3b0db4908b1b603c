// Package pdf renders uploaded documents into JPEG page images for the
// vision-based resume importer.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/png" // uploaded resumes arrive as PNG too

	"github.com/gen2brain/go-fitz"
)

const jpegQuality = 95

// RenderPages rasterizes every page of a PDF into JPEG bytes
func RenderPages(pdfData []byte) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([][]byte, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		img, err := doc.Image(i)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i, err)
		}

		encoded, err := encodeJPEG(img)
		if err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i, err)
		}
		pages = append(pages, encoded)
	}

	return pages, nil
}

// NormalizeImage re-encodes a standalone image upload (JPEG or PNG) as a
// single JPEG page
func NormalizeImage(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
