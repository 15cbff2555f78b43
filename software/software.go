// Package software provides CPU reference implementations of the glfx
// filter kernels.
//
// Each function mirrors the per-pixel semantics of the corresponding
// fragment shader, operating on image.Image values instead of GPU textures.
// They serve two purposes: tests pin the shader semantics against them, and
// pipelines without a GL context can fall back to them. They are written
// for correctness, not speed.
package software

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// toNRGBA converts any image to a freshly allocated NRGBA image with its
// origin at (0,0). The input is never aliased, so kernels can sample the
// source while writing the destination.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return dst
}

// clamp8 clamps a float channel value to the 0-255 byte range.
func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// clampInt clamps x to [lo, hi].
func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// sampleBilinear samples an NRGBA image at texture coordinates (u, v) in
// the 0-1 range with bilinear filtering and clamp-to-edge addressing,
// matching GL linear sampling of a clamped texture. The returned channels
// are in the 0-255 range.
func sampleBilinear(img *image.NRGBA, u, v float64) (r, g, b, a float64) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	// Texel centers sit at (i+0.5)/w, matching GL.
	x := u*float64(w) - 0.5
	y := v*float64(h) - 0.5

	x0 := int(floor(x))
	y0 := int(floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := texel(img, x0, y0)
	c10 := texel(img, x0+1, y0)
	c01 := texel(img, x0, y0+1)
	c11 := texel(img, x0+1, y0+1)

	for i := 0; i < 4; i++ {
		top := c00[i] + (c10[i]-c00[i])*fx
		bot := c01[i] + (c11[i]-c01[i])*fx
		switch i {
		case 0:
			r = top + (bot-top)*fy
		case 1:
			g = top + (bot-top)*fy
		case 2:
			b = top + (bot-top)*fy
		case 3:
			a = top + (bot-top)*fy
		}
	}
	return r, g, b, a
}

// texel returns the clamped texel at integer coordinates as float channels.
func texel(img *image.NRGBA, x, y int) [4]float64 {
	x = clampInt(x, 0, img.Rect.Dx()-1)
	y = clampInt(y, 0, img.Rect.Dy()-1)
	i := img.PixOffset(x, y)
	return [4]float64{
		float64(img.Pix[i]),
		float64(img.Pix[i+1]),
		float64(img.Pix[i+2]),
		float64(img.Pix[i+3]),
	}
}

func floor(v float64) float64 {
	f := float64(int(v))
	if v < 0 && f != v {
		f--
	}
	return f
}
