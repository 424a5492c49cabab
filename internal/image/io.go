// Package image locates, decodes and flattens texture image files.
//
// Decoding understands PNG, JPEG and GIF (standard library) plus BMP, TIFF
// and WebP (golang.org/x/image). Every decoded image is flattened to
// non-premultiplied RGBA8, row-major, 4 bytes per pixel.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
)

// I/O errors.
var (
	// ErrNotFound is returned when the resolved asset path does not exist.
	ErrNotFound = errors.New("image: file not found")

	// ErrUndecodable is returned when the file content is not a decodable image.
	ErrUndecodable = errors.New("image: cannot decode")
)

// AssetDir is the texture directory, relative to the working directory.
const AssetDir = "Assets/Textures"

// Extension is appended to filenames that do not already carry it.
const Extension = ".png"

// sniffLen is the number of leading bytes inspected for a file signature.
const sniffLen = 262

// ResolvePath maps a texture filename to <cwd>/Assets/Textures/<filename>,
// appending ".png" unless filename already ends in it.
func ResolvePath(filename string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("image: working directory: %w", err)
	}
	if !strings.HasSuffix(filename, Extension) {
		filename += Extension
	}
	return filepath.Join(wd, filepath.FromSlash(AssetDir), filename), nil
}

// Load reads and decodes the image at path.
// It fails with ErrNotFound when path is not an existing regular file and
// with ErrUndecodable when the content is not an image the registered
// decoders understand.
func Load(path string) (image.Image, error) {
	path = filepath.Clean(path)
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("image: %w", err)
	case !fi.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err) // *fs.PathError carries the path
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an in-memory image file, auto-detecting the format.
func Decode(data []byte) (image.Image, error) {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		return nil, fmt.Errorf("%w: content is %s, not an image", ErrUndecodable, describe(kind.MIME.Value))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrUndecodable, b.Dx(), b.Dy())
	}
	return img, nil
}

func describe(mime string) string {
	if mime == "" {
		return "unknown"
	}
	return mime
}
