package software

import (
	"image"
	"math"
)

// Exposure applies the exposure kernel to an image: each RGB channel is
// scaled by 2^exposure and clipped to the valid range, alpha is unchanged.
// Exposure 0 returns the input colors exactly.
func Exposure(src image.Image, exposure float64) *image.NRGBA {
	out := toNRGBA(src)
	factor := math.Pow(2, exposure)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = clamp8(float64(out.Pix[i]) * factor)
		out.Pix[i+1] = clamp8(float64(out.Pix[i+1]) * factor)
		out.Pix[i+2] = clamp8(float64(out.Pix[i+2]) * factor)
	}
	return out
}
