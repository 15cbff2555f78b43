package software

import (
	"image"
	"math"
)

// BulgeCoord remaps a single texture coordinate the way the bulge
// distortion shader does. center, radius, and the input coordinate are in
// relative 0-1 units.
//
// The center is a fixed point of the distortion, and scale 0 maps every
// coordinate to itself.
func BulgeCoord(u, v, centerX, centerY, radius, scale float64) (float64, float64) {
	dx := u - centerX
	dy := v - centerY
	dist := hypot(dx, dy)
	if dist < radius {
		percent := 1.0 - ((radius-dist)/radius)*scale
		percent *= percent
		dx *= percent
		dy *= percent
	}
	return centerX + dx, centerY + dy
}

// BulgeDistort applies the bulge distortion kernel to an image.
// Sample coordinates within radius of center are pulled toward or pushed
// away from center; the rest of the image passes through unchanged.
func BulgeDistort(src image.Image, centerX, centerY, radius, scale float64) *image.NRGBA {
	in := toNRGBA(src)
	w := in.Rect.Dx()
	h := in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			su, sv := BulgeCoord(u, v, centerX, centerY, radius, scale)
			r, g, b, a := sampleBilinear(in, su, sv)
			i := out.PixOffset(x, y)
			out.Pix[i] = clamp8(r)
			out.Pix[i+1] = clamp8(g)
			out.Pix[i+2] = clamp8(b)
			out.Pix[i+3] = clamp8(a)
		}
	}
	return out
}

func hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
