package glfx

import "github.com/gogpu/glfx/gl"

// Filter lets clients modify individual video frames as they are being
// transcoded. Filters of this type are used in surface-based encoding, so
// modifications are written as GL shader programs.
//
// The external renderer owns the graphics context, the video frame texture,
// and the view-projection matrix. For each filter in use it calls Init
// exactly once, then Apply once per frame rendered through that filter, all
// on the goroutine that owns the graphics context.
type Filter interface {
	// Init initializes the filter: compiles its shader program, resolves
	// uniform handles, and composes its model matrix with the supplied
	// view-projection matrix. The renderer configures the view matrix so
	// its camera orientation matches the video's, and the projection
	// matrix as an orthogonal projection adjusted for the video frame's
	// aspect ratio: (-aspectRatio, aspectRatio, -1, 1, -1, 1). No model
	// component is included; the filter supplies its own.
	//
	// vpMatrix holds 16 column-major floats starting at vpMatrixOffset.
	// The slice is read during the call and not retained.
	//
	// Init must be called exactly once, before any Apply. A compile or
	// link failure is returned with the driver's diagnostic log attached
	// and leaves the filter uninitialized; the renderer must abort setup
	// of the filter chain rather than render with a half-initialized
	// shader.
	Init(gc gl.Context, vpMatrix []float32, vpMatrixOffset int) error

	// Apply renders one frame through the filter. presentationTimeNs is
	// the frame's presentation time in nanoseconds; time-varying filters
	// read it from their ParameterPusher. The draw is issued against
	// whatever framebuffer the caller currently has bound.
	Apply(gc gl.Context, presentationTimeNs int64)

	// Release synchronously frees the filter's GPU resources. The filter
	// cannot be used afterwards.
	Release(gc gl.Context)
}

// ParameterPusher uploads a filter variant's own uniform values before each
// draw. It replaces subclass method overriding with a strategy value that
// is testable in isolation from the shared base.
//
// Pushes are direct, order-independent uniform uploads through the cache;
// names must exactly match the uniforms declared by the variant's fragment
// shader. Time-varying variants read presentationTimeNs; static variants
// ignore it.
type ParameterPusher interface {
	Push(gc gl.Context, u *Uniforms, presentationTimeNs int64)
}

// ParameterPusherFunc adapts a function to the ParameterPusher interface.
type ParameterPusherFunc func(gc gl.Context, u *Uniforms, presentationTimeNs int64)

// Push calls f.
func (f ParameterPusherFunc) Push(gc gl.Context, u *Uniforms, presentationTimeNs int64) {
	f(gc, u, presentationTimeNs)
}
