package glfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/glfx/gl/gltest"
)

func TestVariantUniforms(t *testing.T) {
	tests := []struct {
		name       string
		filter     *FrameFilter
		wantFloats map[string][]float32
		wantInts   map[string]int32
	}{
		{
			name:   "bulge distortion",
			filter: NewBulgeDistortion(Pt(0.3, 0.7), 0.25, -0.5),
			wantFloats: map[string][]float32{
				"center": {0.3, 0.7},
				"radius": {0.25},
				"scale":  {-0.5},
			},
		},
		{
			name:       "exposure",
			filter:     NewExposure(1.5),
			wantFloats: map[string][]float32{"exposure": {1.5}},
		},
		{
			name:     "kuwahara",
			filter:   NewKuwahara(3),
			wantInts: map[string]int32{"radius": 3},
		},
		{
			name:       "brightness",
			filter:     NewBrightness(0.2),
			wantFloats: map[string][]float32{"brightness": {0.2}},
		},
		{
			name:       "contrast",
			filter:     NewContrast(1.4),
			wantFloats: map[string][]float32{"contrast": {1.4}},
		},
		{
			name:       "saturation",
			filter:     NewSaturation(0.0),
			wantFloats: map[string][]float32{"saturation": {0}},
		},
		{
			name:   "grayscale has no parameters",
			filter: NewGrayscale(),
		},
		{
			name:       "gamma",
			filter:     NewGamma(2.2),
			wantFloats: map[string][]float32{"gamma": {2.2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := gltest.NewContext()
			mustInit(t, tt.filter, gc, mgl32.Ident4())
			tt.filter.Apply(gc, 0)

			d := gc.Draws[0]
			for name, want := range tt.wantFloats {
				floatsNear(t, name, d.Uniforms[name], want, 0)
			}
			for name, want := range tt.wantInts {
				if got := d.Ints[name]; got != want {
					t.Errorf("%s = %d, want %d", name, got, want)
				}
			}

			// Every variant renders through the shared quad and sampler.
			if got := d.Ints[TextureUniform]; got != 0 {
				t.Errorf("sTexture = %d, want 0", got)
			}
			if d.Count != 4 {
				t.Errorf("vertex count = %d, want 4", d.Count)
			}
		})
	}
}

func TestVariantsAcceptGeometryOptions(t *testing.T) {
	gc := gltest.NewContext()
	f := NewGrayscale(WithSize(Pt(0.5, 0.5)))

	vp := sampleVP()
	mustInit(t, f, gc, vp)
	f.Apply(gc, 0)

	want := ComputeMVP(vp, &Geometry{Size: Pt(0.5, 0.5)})
	floatsNear(t, "uMVPMatrix", gc.Draws[0].Uniforms[MVPMatrixUniform], want[:], 1e-6)
}
