// Package glfx provides per-frame GPU visual effects for surface-based
// video transcoding pipelines.
//
// # Overview
//
// glfx implements the frame-render-filter framework used while decoded video
// frames flow through a surface-backed encoder. Each effect is a shader
// program plus a small set of numeric parameters; the framework compiles the
// shader once, positions the effect quad relative to the output frame, and
// re-invokes the shader for every frame with minimal per-frame overhead.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glfx"
//	    "github.com/gogpu/glfx/backend/gles"
//	)
//
//	// On the render thread, with a current EGL/GL context:
//	gc, err := gles.NewContext()
//	if err != nil {
//	    // GL function pointers could not be loaded
//	}
//
//	filter := glfx.NewBulgeDistortion(glfx.Pt(0.5, 0.5), 0.25, 0.5)
//	if err := filter.Init(gc, vpMatrix, 0); err != nil {
//	    // shader failed to compile; abort the filter chain
//	}
//	filter.SetInputTexture(frameTexture)
//
//	// Once per decoded frame:
//	filter.Apply(gc, presentationTimeNs)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Filter, FrameFilter, Geometry, Uniforms, Point, and the
//     concrete filter constructors
//   - gl: the explicit graphics-context abstraction (gl.Context)
//   - backend/gles: production gl.Context over OpenGL ES 2.0
//   - gl/gltest: recording fake context for tests
//   - software: CPU reference implementations of the filter kernels
//
// # Coordinate System
//
// Filter geometry is expressed in frame-normalized units:
//   - Size is a fraction of the output frame extent; (1,1) fills the frame
//   - Position is the quad-center displacement from the frame center,
//     fourth-quadrant convention (positive Y down); (0,0) is centered
//   - Rotation is in degrees, counter-clockwise, about the quad's own center
//
// Matrices are column-major [mgl32.Mat4] values, matching OpenGL and the
// view-projection matrix supplied by the renderer.
//
// # Threading
//
// All Init/Apply/Release calls for all filters in a chain must execute on
// the one goroutine that owns the graphics context, conventionally the one
// driving the render/encode loop. Filters hold no cross-instance shared
// state and are independent once compiled.
package glfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
