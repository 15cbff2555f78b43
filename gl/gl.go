// Package gl defines the graphics-context abstraction the filter framework
// renders through.
//
// A Context is passed explicitly to every Init/Apply/Release call instead of
// being picked up from implicit thread-local GPU state. This keeps the
// framework portable to explicit-context graphics APIs and makes filters
// testable against a recording fake (see gl/gltest). The production
// implementation over OpenGL ES 2.0 lives in backend/gles.
//
// All calls on a Context must be made from the single goroutine that owns
// the underlying graphics context. Implementations are not required to be
// safe for concurrent use.
package gl

// Program is an opaque handle to a linked GPU shader program.
type Program uint32

// Shader is an opaque handle to a single compiled shader stage.
type Shader uint32

// Buffer is an opaque handle to a GPU vertex buffer.
type Buffer uint32

// Texture is an opaque handle to a GPU texture. Textures are created and
// owned by the renderer, never by the filter framework; the framework only
// binds them.
type Texture uint32

// Uniform is the location of a named uniform within a linked program.
type Uniform int32

// Attrib is the location of a named vertex attribute within a linked program.
type Attrib int32

// NoUniform is returned by UniformLocation when the named uniform does not
// exist in the linked program. All uniform uploads through NoUniform are
// silent no-ops; drivers are free to optimize unused uniforms away, so an
// absent name is never an error.
const NoUniform Uniform = -1

// NoAttrib is the attribute analogue of NoUniform.
const NoAttrib Attrib = -1

// ShaderType identifies a shader stage.
type ShaderType uint32

// Shader stages.
const (
	// VertexShader is the vertex stage.
	VertexShader ShaderType = iota + 1

	// FragmentShader is the fragment stage.
	FragmentShader
)

// String returns the stage name used in diagnostics.
func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// TextureTarget identifies the binding target of a texture.
type TextureTarget uint32

// Texture targets.
const (
	// Texture2D is a regular two-dimensional texture.
	Texture2D TextureTarget = iota + 1

	// TextureExternalOES is a platform video-surface-backed texture,
	// sampled in shaders via samplerExternalOES.
	TextureExternalOES
)

// DrawMode identifies the primitive assembly mode of a draw call.
type DrawMode uint32

// Draw modes.
const (
	// Triangles assembles independent triangles.
	Triangles DrawMode = iota + 1

	// TriangleStrip assembles a connected triangle strip.
	TriangleStrip
)

// Context abstracts the subset of a GL-style API the filter framework needs.
//
// Resource lifecycle:
//   - Resources are created via Create* methods and released via Delete*.
//   - Create* methods return an error only on GPU resource exhaustion;
//     that error is fatal for the filter being initialized.
//   - Handles become invalid after deletion and must not be reused.
type Context interface {
	// === Shader and program lifecycle ===

	// CreateShader allocates a shader object for the given stage.
	CreateShader(t ShaderType) (Shader, error)

	// ShaderSource replaces the source text of a shader object.
	ShaderSource(s Shader, src string)

	// CompileShader compiles the shader's current source. Success is
	// reported by ShaderCompiled; diagnostics by ShaderInfoLog.
	CompileShader(s Shader)

	// ShaderCompiled reports whether the last CompileShader succeeded.
	ShaderCompiled(s Shader) bool

	// ShaderInfoLog returns the compiler diagnostic log for a shader.
	ShaderInfoLog(s Shader) string

	// DeleteShader releases a shader object.
	DeleteShader(s Shader)

	// CreateProgram allocates an empty program object.
	CreateProgram() (Program, error)

	// AttachShader attaches a compiled shader stage to a program.
	AttachShader(p Program, s Shader)

	// LinkProgram links the attached stages. Success is reported by
	// ProgramLinked; diagnostics by ProgramInfoLog.
	LinkProgram(p Program)

	// ProgramLinked reports whether the last LinkProgram succeeded.
	ProgramLinked(p Program) bool

	// ProgramInfoLog returns the linker diagnostic log for a program.
	ProgramInfoLog(p Program) string

	// DeleteProgram releases a program object.
	DeleteProgram(p Program)

	// UseProgram makes a program current for subsequent uniform uploads
	// and draw calls.
	UseProgram(p Program)

	// === Location lookup ===

	// UniformLocation returns the location of a named uniform, or
	// NoUniform when the linked program declares no such uniform.
	// Never fails.
	UniformLocation(p Program, name string) Uniform

	// AttribLocation returns the location of a named vertex attribute,
	// or NoAttrib when absent.
	AttribLocation(p Program, name string) Attrib

	// === Uniform uploads ===
	//
	// All uploads target the currently used program and silently ignore
	// NoUniform locations.

	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, x, y float32)
	Uniform3f(u Uniform, x, y, z float32)
	Uniform4f(u Uniform, x, y, z, w float32)
	Uniform1i(u Uniform, v int32)

	// UniformMatrix4fv uploads a 4x4 matrix in column-major order,
	// matching the layout of mgl32.Mat4 and of the renderer's VP matrix.
	UniformMatrix4fv(u Uniform, m [16]float32)

	// === Vertex buffers ===

	// CreateBuffer allocates a vertex buffer object.
	CreateBuffer() (Buffer, error)

	// BindBuffer makes a buffer the current array buffer.
	BindBuffer(b Buffer)

	// BufferData uploads static vertex data to the current array buffer.
	BufferData(data []float32)

	// DeleteBuffer releases a vertex buffer object.
	DeleteBuffer(b Buffer)

	// EnableVertexAttribArray enables streaming of an attribute from the
	// current array buffer.
	EnableVertexAttribArray(a Attrib)

	// DisableVertexAttribArray disables attribute streaming.
	DisableVertexAttribArray(a Attrib)

	// VertexAttribPointer configures an enabled attribute to read size
	// float32 components per vertex from the current array buffer, with
	// stride and offset given in bytes.
	VertexAttribPointer(a Attrib, size, stride, offset int)

	// === Textures ===

	// ActiveTexture selects the texture unit subsequent binds target.
	ActiveTexture(unit int)

	// BindTexture binds a texture to the given target on the active unit.
	BindTexture(target TextureTarget, t Texture)

	// === Drawing ===

	// DrawArrays issues a draw call against whatever framebuffer the
	// caller currently has bound. The framework never selects a render
	// target; that is the renderer's responsibility.
	DrawArrays(mode DrawMode, first, count int)
}
