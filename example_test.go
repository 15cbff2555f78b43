package glfx_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/glfx"
	"github.com/gogpu/glfx/gl/gltest"
)

// Render three frames through a bulge distortion covering the lower-right
// quarter of the output. In production the context comes from backend/gles
// and the texture from the video decoder's output surface.
func Example() {
	gc := gltest.NewContext()

	filter := glfx.NewBulgeDistortion(glfx.Pt(0.5, 0.5), 0.25, 0.5,
		glfx.WithSize(glfx.Pt(0.5, 0.5)),
		glfx.WithPosition(glfx.Pt(0.25, -0.25)),
	)

	vp := mgl32.Ident4()
	if err := filter.Init(gc, vp[:], 0); err != nil {
		fmt.Println("init failed:", err)
		return
	}
	filter.SetInputTexture(1)

	for frame := int64(0); frame < 3; frame++ {
		filter.Apply(gc, frame*33_366_700)
	}
	filter.Release(gc)

	fmt.Println("frames rendered:", len(gc.Draws))
	fmt.Println("programs live:", gc.LivePrograms())
	// Output:
	// frames rendered: 3
	// programs live: 0
}
