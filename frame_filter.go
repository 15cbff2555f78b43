package glfx

import (
	"log/slog"

	"github.com/gogpu/glfx/gl"
)

// filterState is the FrameFilter lifecycle state.
type filterState uint8

const (
	stateUninitialized filterState = iota
	stateReady
	stateReleased
)

// Unit quad with standard texture coordinates, drawn as a triangle strip.
// Interleaved layout: vec2 position in NDC, vec2 texcoord.
var quadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, 1, 1, 1,
}

const (
	quadVertexCount = 4
	quadStride      = 4 * 4 // 4 float32 per vertex
	quadTexOffset   = 2 * 4 // texcoord follows vec2 position
)

// FrameFilter is the shared base every concrete filter is built on.
// It owns one compiled shader program, one uniform handle cache, and one
// optional geometry, and implements the Filter contract by binding the
// program and default quad geometry on Init and re-uploading the current
// uniform values and issuing the draw call on Apply.
//
// A FrameFilter exclusively owns its program and handle cache. The video
// texture and the VP matrix are borrowed read-only from the renderer and
// never retained beyond the call in which they are passed.
//
// FrameFilter is not safe for concurrent use; all calls must happen on the
// goroutine owning the graphics context.
type FrameFilter struct {
	vertexShader   string
	fragmentShader string
	pusher         ParameterPusher
	geometry       *Geometry

	state filterState

	program  gl.Program
	uniforms *Uniforms
	quad     gl.Buffer

	mvpUniform gl.Uniform
	posAttrib  gl.Attrib
	texAttrib  gl.Attrib
	mvp        [16]float32

	texture    gl.Texture
	hasTexture bool
}

// Statically assert the contract.
var _ Filter = (*FrameFilter)(nil)

// New creates a frame render filter from a vertex/fragment shader pair and
// a parameter pusher. pusher may be nil for variants without custom
// uniforms. With no geometry options the filter covers the entire output
// frame.
func New(vertexShader, fragmentShader string, pusher ParameterPusher, opts ...Option) *FrameFilter {
	f := &FrameFilter{
		vertexShader:   vertexShader,
		fragmentShader: fragmentShader,
		pusher:         pusher,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewPassthrough creates a filter that renders the source frame unmodified
// through the default shader pair. Combined with geometry options it crops,
// positions, or rotates the source frame without any color change.
func NewPassthrough(opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, DefaultFragmentShader, nil, opts...)
}

// SetInputTexture hands the filter the renderer-owned video texture to bind
// on texture unit 0 during Apply. Without it the filter assumes the
// renderer keeps the input texture bound itself. The filter never takes
// ownership.
func (f *FrameFilter) SetInputTexture(t gl.Texture) {
	f.texture = t
	f.hasTexture = true
}

// Geometry returns the configured geometry, or nil when the filter fills
// the whole frame.
func (f *FrameFilter) Geometry() *Geometry {
	return f.geometry
}

// Init implements Filter. It compiles the shader pair, resolves the
// framework's built-in handles, uploads the quad vertex buffer, and caches
// the MVP composed from the filter's geometry and the supplied VP matrix.
// The VP matrix is supplied once, not revised per frame; the renderer
// configures it once per filter chain.
//
// Calling Init twice, or with fewer than 16 matrix floats available at
// vpMatrixOffset, is a precondition violation and panics.
func (f *FrameFilter) Init(gc gl.Context, vpMatrix []float32, vpMatrixOffset int) error {
	if f.state != stateUninitialized {
		panic("glfx: Init called twice on the same filter")
	}
	if vpMatrixOffset < 0 || len(vpMatrix) < vpMatrixOffset+16 {
		panic("glfx: vpMatrix must hold 16 floats at vpMatrixOffset")
	}

	program, err := compileProgram(gc, f.vertexShader, f.fragmentShader)
	if err != nil {
		return err
	}

	quad, err := gc.CreateBuffer()
	if err != nil {
		gc.DeleteProgram(program)
		return err
	}
	gc.BindBuffer(quad)
	gc.BufferData(quadVertices)

	f.program = program
	f.quad = quad
	f.uniforms = NewUniforms(program)

	f.mvpUniform = f.uniforms.Location(gc, MVPMatrixUniform)
	f.posAttrib = gc.AttribLocation(program, PositionAttribute)
	f.texAttrib = gc.AttribLocation(program, TextureCoordAttribute)
	if f.mvpUniform == gl.NoUniform {
		Logger().Warn("vertex shader declares no MVP uniform",
			slog.String("uniform", MVPMatrixUniform))
	}

	vp := mat4FromSlice(vpMatrix, vpMatrixOffset)
	mvp := ComputeMVP(vp, f.geometry)
	copy(f.mvp[:], mvp[:])

	f.state = stateReady
	Logger().Debug("frame filter initialized",
		slog.Int("program", int(program)),
		slog.Bool("customGeometry", f.geometry != nil))
	return nil
}

// Apply implements Filter. It binds the program and quad geometry, uploads
// the cached MVP, binds the input texture on unit 0, invokes the variant's
// ParameterPusher, and issues a single triangle-strip draw against the
// caller's currently bound framebuffer.
//
// Calling Apply on a filter that is not Ready is a precondition violation
// and panics: continuing would draw with undefined GPU state.
func (f *FrameFilter) Apply(gc gl.Context, presentationTimeNs int64) {
	if f.state != stateReady {
		panic("glfx: Apply called on a filter that is not initialized")
	}

	gc.UseProgram(f.program)

	if f.mvpUniform != gl.NoUniform {
		gc.UniformMatrix4fv(f.mvpUniform, f.mvp)
	}

	gc.BindBuffer(f.quad)
	if f.posAttrib != gl.NoAttrib {
		gc.EnableVertexAttribArray(f.posAttrib)
		gc.VertexAttribPointer(f.posAttrib, 2, quadStride, 0)
	}
	if f.texAttrib != gl.NoAttrib {
		gc.EnableVertexAttribArray(f.texAttrib)
		gc.VertexAttribPointer(f.texAttrib, 2, quadStride, quadTexOffset)
	}

	gc.ActiveTexture(0)
	if f.hasTexture {
		gc.BindTexture(gl.TextureExternalOES, f.texture)
	}
	f.uniforms.SetInt(gc, TextureUniform, 0)

	if f.pusher != nil {
		f.pusher.Push(gc, f.uniforms, presentationTimeNs)
	}

	gc.DrawArrays(gl.TriangleStrip, 0, quadVertexCount)

	if f.posAttrib != gl.NoAttrib {
		gc.DisableVertexAttribArray(f.posAttrib)
	}
	if f.texAttrib != gl.NoAttrib {
		gc.DisableVertexAttribArray(f.texAttrib)
	}
}

// Release implements Filter. Teardown is synchronous and immediate; there
// is no asynchronous path. Releasing an uninitialized filter is a no-op,
// releasing twice logs a warning and does nothing.
func (f *FrameFilter) Release(gc gl.Context) {
	switch f.state {
	case stateReleased:
		Logger().Warn("frame filter released twice")
		return
	case stateReady:
		gc.DeleteProgram(f.program)
		gc.DeleteBuffer(f.quad)
		f.uniforms = nil
	}
	f.state = stateReleased
}
