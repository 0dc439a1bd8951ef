package stamp

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"slices"

	_ "golang.org/x/image/webp"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 10 << 20

// Upload errors.
var (
	ErrUnsupportedImage = errors.New("stamp: unsupported image type, only PNG, JPEG and WebP are allowed")
	ErrImageTooLarge    = errors.New("stamp: image too large, maximum size is 10MB")
)

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

// DecodeImage validates and decodes an uploaded image. The type is sniffed
// from the content, not taken from a file name.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrImageTooLarge, len(data))
	}
	ct := http.DetectContentType(data)
	if !slices.Contains(allowedImageTypes, ct) {
		return nil, fmt.Errorf("%w (%s)", ErrUnsupportedImage, ct)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("stamp: decode image: %w", err)
	}
	return img, nil
}

// LoadImageFile reads and decodes the image at path.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stamp: open image: %w", err)
	}
	defer f.Close()
	return readImage(f)
}

// LoadImageFS reads and decodes name from fsys.
func LoadImageFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("stamp: open image: %w", err)
	}
	defer f.Close()
	return readImage(f)
}

// readImage stops reading one byte past the limit so oversized files are
// rejected without being loaded whole.
func readImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("stamp: read image: %w", err)
	}
	return DecodeImage(data)
}

// FirstFile returns the name of the first regular file at the root of fsys,
// which is how dropped files are presented.
func FirstFile(fsys fs.FS) (string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", fmt.Errorf("stamp: list dropped files: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			return e.Name(), nil
		}
	}
	return "", fmt.Errorf("stamp: no file dropped")
}
