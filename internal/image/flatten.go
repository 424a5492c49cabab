package image

import (
	"image"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the size of one flattened pixel (R, G, B, A).
const BytesPerPixel = 4

// Flatten converts img to a tightly packed, row-major byte sequence with
// exactly 4 bytes per pixel in R, G, B, A order (straight alpha).
// It returns the pixel data and the image width and height. The buffer
// comes from a pool; pass it to Release once it has been uploaded.
func Flatten(img image.Image) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	rowLen := width * BytesPerPixel
	pix = defaultPool.Get(rowLen * height)

	// Fast path: NRGBA already stores straight-alpha RGBA8, only the stride
	// and origin may differ.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
		}
		return pix, width, height
	}

	dst := &image.NRGBA{
		Pix:    pix,
		Stride: rowLen,
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return pix, width, height
}
