package software

import "image"

// quadrant anchors, as (x, y) loop ranges relative to the center pixel.
// Order matters: ties in variance resolve to the earliest quadrant, the
// same tie-break the shader's strict less-than comparison produces.
var quadrants = [4][4]int{
	{-1, 0, -1, 0}, // top-left
	{0, 1, -1, 0},  // top-right
	{0, 1, 0, 1},   // bottom-right
	{-1, 0, 0, 1},  // bottom-left
}

// Kuwahara applies the quadrant-variance smoothing kernel to an image.
// For each pixel, four overlapping quadrants of side radius+1 anchored at
// the pixel are examined; the output is the mean color of the quadrant
// with the lowest summed per-channel variance. A uniform-color
// neighborhood is returned unchanged for any radius.
//
// Cost grows with 4*(radius+1)^2 per pixel; large radii are expensive.
func Kuwahara(src image.Image, radius int) *image.NRGBA {
	in := toNRGBA(src)
	w := in.Rect.Dx()
	h := in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	if radius < 0 {
		radius = 0
	}
	n := float64((radius + 1) * (radius + 1))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var best [3]float64
			minSigma2 := -1.0

			for _, q := range quadrants {
				var m, s [3]float64
				for j := q[2] * radius; j <= q[3]*radius; j++ {
					for i := q[0] * radius; i <= q[1]*radius; i++ {
						c := texel(in, x+i, y+j)
						for ch := 0; ch < 3; ch++ {
							v := c[ch] / 255
							m[ch] += v
							s[ch] += v * v
						}
					}
				}
				var sigma2 float64
				for ch := 0; ch < 3; ch++ {
					m[ch] /= n
					d := s[ch]/n - m[ch]*m[ch]
					if d < 0 {
						d = -d
					}
					sigma2 += d
				}
				if minSigma2 < 0 || sigma2 < minSigma2 {
					minSigma2 = sigma2
					best = m
				}
			}

			i := out.PixOffset(x, y)
			out.Pix[i] = clamp8(best[0] * 255)
			out.Pix[i+1] = clamp8(best[1] * 255)
			out.Pix[i+2] = clamp8(best[2] * 255)
			out.Pix[i+3] = 255
		}
	}
	return out
}
