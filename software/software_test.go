package software

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / (w - 1)),
				G: uint8(y * 255 / (h - 1)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func pixelsEqual(t *testing.T, got, want *image.NRGBA) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got.NRGBAAt(x, y) != want.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got.NRGBAAt(x, y), want.NRGBAAt(x, y))
			}
		}
	}
}

func TestBulgeCoordCenterIsFixedPoint(t *testing.T) {
	u, v := BulgeCoord(0.5, 0.5, 0.5, 0.5, 0.25, 0.75)
	if u != 0.5 || v != 0.5 {
		t.Errorf("center remapped to (%v, %v), want (0.5, 0.5)", u, v)
	}
}

func TestBulgeCoordZeroScaleIsIdentity(t *testing.T) {
	for _, p := range [][2]float64{{0.1, 0.9}, {0.5, 0.4}, {0.45, 0.55}} {
		u, v := BulgeCoord(p[0], p[1], 0.5, 0.5, 0.25, 0)
		if math.Abs(u-p[0]) > 1e-12 || math.Abs(v-p[1]) > 1e-12 {
			t.Errorf("scale 0 moved (%v, %v) to (%v, %v)", p[0], p[1], u, v)
		}
	}
}

func TestBulgeCoordOutsideRadiusUntouched(t *testing.T) {
	u, v := BulgeCoord(0.9, 0.9, 0.5, 0.5, 0.25, 0.5)
	if u != 0.9 || v != 0.9 {
		t.Errorf("point outside radius moved to (%v, %v)", u, v)
	}
}

func TestBulgeDistortPreservesUniformColor(t *testing.T) {
	src := solid(16, 16, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	got := BulgeDistort(src, 0.5, 0.5, 0.25, 0.5)
	pixelsEqual(t, got, src)
}

func TestExposureZeroIsIdentity(t *testing.T) {
	src := gradient(8, 8)
	pixelsEqual(t, Exposure(src, 0), src)
}

func TestExposureOneStopDoubles(t *testing.T) {
	src := solid(4, 4, color.NRGBA{R: 10, G: 100, B: 200, A: 255})
	got := Exposure(src, 1)
	want := got.NRGBAAt(0, 0)
	if want.R != 20 || want.G != 200 || want.B != 255 {
		t.Errorf("one stop up = %v, want {20 200 255 255}", want)
	}
	if want.A != 255 {
		t.Errorf("alpha changed to %d", want.A)
	}
}

func TestKuwaharaUniformColorUnchanged(t *testing.T) {
	src := solid(12, 12, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	for _, radius := range []int{0, 1, 3} {
		pixelsEqual(t, Kuwahara(src, radius), src)
	}
}

func TestKuwaharaSmoothsNoise(t *testing.T) {
	src := solid(9, 9, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	src.SetNRGBA(4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := Kuwahara(src, 2)
	// Every quadrant around the speck contains mostly flat pixels; the
	// lowest-variance quadrant never contains the outlier alone, so the
	// speck is suppressed toward the background.
	if c := got.NRGBAAt(4, 4); c.R == 255 {
		t.Errorf("center speck survived: %v", c)
	}
}

func TestColorIdentities(t *testing.T) {
	src := gradient(8, 8)
	tests := []struct {
		name string
		got  *image.NRGBA
	}{
		{"brightness 0", Brightness(src, 0)},
		{"contrast 1", Contrast(src, 1)},
		{"saturation 1", Saturation(src, 1)},
		{"gamma 1", Gamma(src, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pixelsEqual(t, tt.got, src)
		})
	}
}

func TestGrayscaleEqualizesChannels(t *testing.T) {
	src := solid(4, 4, color.NRGBA{R: 200, G: 50, B: 10, A: 255})
	got := Grayscale(src)
	c := got.NRGBAAt(1, 1)
	if c.R != c.G || c.G != c.B {
		t.Errorf("grayscale pixel has unequal channels: %v", c)
	}
	// BT.709 luma of (200, 50, 10).
	want := clamp8(0.2125*200 + 0.7154*50 + 0.0721*10)
	if c.R != want {
		t.Errorf("luma = %d, want %d", c.R, want)
	}
}

func TestContrastPivotsAroundMidGray(t *testing.T) {
	mid := solid(2, 2, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	got := Contrast(mid, 3)
	c := got.NRGBAAt(0, 0)
	if d := int(c.R) - 128; d < -2 || d > 2 {
		t.Errorf("mid gray moved to %d under contrast", c.R)
	}
}

func TestSaturationZeroMatchesGrayscale(t *testing.T) {
	src := gradient(6, 6)
	pixelsEqual(t, Saturation(src, 0), Grayscale(src))
}
