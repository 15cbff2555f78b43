package software

import (
	"image"
	"math"
)

// BT.709 luminance weights, matching the grayscale and saturation shaders.
const (
	lumR = 0.2125
	lumG = 0.7154
	lumB = 0.0721
)

// mapRGB applies f to each pixel's RGB channels in the 0-1 range, leaving
// alpha unchanged.
func mapRGB(src image.Image, f func(r, g, b float64) (float64, float64, float64)) *image.NRGBA {
	out := toNRGBA(src)
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b := f(
			float64(out.Pix[i])/255,
			float64(out.Pix[i+1])/255,
			float64(out.Pix[i+2])/255,
		)
		out.Pix[i] = clamp8(r * 255)
		out.Pix[i+1] = clamp8(g * 255)
		out.Pix[i+2] = clamp8(b * 255)
	}
	return out
}

// Brightness shifts each RGB channel by brightness (0-1 scale).
func Brightness(src image.Image, brightness float64) *image.NRGBA {
	return mapRGB(src, func(r, g, b float64) (float64, float64, float64) {
		return r + brightness, g + brightness, b + brightness
	})
}

// Contrast scales each RGB channel about middle gray.
func Contrast(src image.Image, contrast float64) *image.NRGBA {
	return mapRGB(src, func(r, g, b float64) (float64, float64, float64) {
		return (r-0.5)*contrast + 0.5, (g-0.5)*contrast + 0.5, (b-0.5)*contrast + 0.5
	})
}

// Saturation mixes between the BT.709 luminance gray of each pixel and its
// original color. 1 is the identity, 0 fully desaturates.
func Saturation(src image.Image, saturation float64) *image.NRGBA {
	return mapRGB(src, func(r, g, b float64) (float64, float64, float64) {
		l := r*lumR + g*lumG + b*lumB
		return l + (r-l)*saturation, l + (g-l)*saturation, l + (b-l)*saturation
	})
}

// Grayscale replaces each pixel's color with its BT.709 luminance.
func Grayscale(src image.Image) *image.NRGBA {
	return mapRGB(src, func(r, g, b float64) (float64, float64, float64) {
		l := r*lumR + g*lumG + b*lumB
		return l, l, l
	})
}

// Gamma raises each RGB channel to the power gamma.
func Gamma(src image.Image, gamma float64) *image.NRGBA {
	return mapRGB(src, func(r, g, b float64) (float64, float64, float64) {
		return math.Pow(r, gamma), math.Pow(g, gamma), math.Pow(b, gamma)
	})
}
