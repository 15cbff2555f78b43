// Package gles implements gl.Context over OpenGL ES 2.0 via go-gl.
//
// A Context issues calls against whatever EGL/GL context is current on the
// calling goroutine; the caller must have made one current (and locked the
// OS thread) before NewContext and must keep every subsequent call on that
// same goroutine.
package gles

import (
	"errors"
	"fmt"
	"strings"

	gles2 "github.com/go-gl/gl/v3.1/gles2"

	"github.com/gogpu/glfx/gl"
)

// TEXTURE_EXTERNAL_OES from the OES_EGL_image_external extension, the
// binding target of video-surface-backed textures.
const glTextureExternalOES = 0x8D65

// ErrObjectAllocation is returned when the driver fails to allocate a
// shader, program, or buffer object.
var ErrObjectAllocation = errors.New("gles: GL object allocation failed")

// Context is the production gl.Context. The zero value is not usable;
// create one with NewContext.
type Context struct{}

var _ gl.Context = (*Context)(nil)

// NewContext loads the GL function pointers for the current context and
// returns a Context. It must be called with a GL context current on the
// calling goroutine.
func NewContext() (*Context, error) {
	if err := gles2.Init(); err != nil {
		return nil, fmt.Errorf("gles: loading GL functions: %w", err)
	}
	return &Context{}, nil
}

func shaderType(t gl.ShaderType) uint32 {
	if t == gl.VertexShader {
		return gles2.VERTEX_SHADER
	}
	return gles2.FRAGMENT_SHADER
}

// CreateShader implements gl.Context.
func (*Context) CreateShader(t gl.ShaderType) (gl.Shader, error) {
	s := gles2.CreateShader(shaderType(t))
	if s == 0 {
		return 0, fmt.Errorf("%w: %s shader", ErrObjectAllocation, t)
	}
	return gl.Shader(s), nil
}

// ShaderSource implements gl.Context.
func (*Context) ShaderSource(s gl.Shader, src string) {
	csources, free := gles2.Strs(src + "\x00")
	gles2.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

// CompileShader implements gl.Context.
func (*Context) CompileShader(s gl.Shader) {
	gles2.CompileShader(uint32(s))
}

// ShaderCompiled implements gl.Context.
func (*Context) ShaderCompiled(s gl.Shader) bool {
	var status int32
	gles2.GetShaderiv(uint32(s), gles2.COMPILE_STATUS, &status)
	return status == gles2.TRUE
}

// ShaderInfoLog implements gl.Context.
func (*Context) ShaderInfoLog(s gl.Shader) string {
	var length int32
	gles2.GetShaderiv(uint32(s), gles2.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gles2.GetShaderInfoLog(uint32(s), length, nil, gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteShader implements gl.Context.
func (*Context) DeleteShader(s gl.Shader) {
	gles2.DeleteShader(uint32(s))
}

// CreateProgram implements gl.Context.
func (*Context) CreateProgram() (gl.Program, error) {
	p := gles2.CreateProgram()
	if p == 0 {
		return 0, fmt.Errorf("%w: program", ErrObjectAllocation)
	}
	return gl.Program(p), nil
}

// AttachShader implements gl.Context.
func (*Context) AttachShader(p gl.Program, s gl.Shader) {
	gles2.AttachShader(uint32(p), uint32(s))
}

// LinkProgram implements gl.Context.
func (*Context) LinkProgram(p gl.Program) {
	gles2.LinkProgram(uint32(p))
}

// ProgramLinked implements gl.Context.
func (*Context) ProgramLinked(p gl.Program) bool {
	var status int32
	gles2.GetProgramiv(uint32(p), gles2.LINK_STATUS, &status)
	return status == gles2.TRUE
}

// ProgramInfoLog implements gl.Context.
func (*Context) ProgramInfoLog(p gl.Program) string {
	var length int32
	gles2.GetProgramiv(uint32(p), gles2.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gles2.GetProgramInfoLog(uint32(p), length, nil, gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteProgram implements gl.Context.
func (*Context) DeleteProgram(p gl.Program) {
	gles2.DeleteProgram(uint32(p))
}

// UseProgram implements gl.Context.
func (*Context) UseProgram(p gl.Program) {
	gles2.UseProgram(uint32(p))
}

// UniformLocation implements gl.Context.
func (*Context) UniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform(gles2.GetUniformLocation(uint32(p), gles2.Str(name+"\x00")))
}

// AttribLocation implements gl.Context.
func (*Context) AttribLocation(p gl.Program, name string) gl.Attrib {
	return gl.Attrib(gles2.GetAttribLocation(uint32(p), gles2.Str(name+"\x00")))
}

// Uniform1f implements gl.Context.
func (*Context) Uniform1f(u gl.Uniform, v float32) {
	gles2.Uniform1f(int32(u), v)
}

// Uniform2f implements gl.Context.
func (*Context) Uniform2f(u gl.Uniform, x, y float32) {
	gles2.Uniform2f(int32(u), x, y)
}

// Uniform3f implements gl.Context.
func (*Context) Uniform3f(u gl.Uniform, x, y, z float32) {
	gles2.Uniform3f(int32(u), x, y, z)
}

// Uniform4f implements gl.Context.
func (*Context) Uniform4f(u gl.Uniform, x, y, z, w float32) {
	gles2.Uniform4f(int32(u), x, y, z, w)
}

// Uniform1i implements gl.Context.
func (*Context) Uniform1i(u gl.Uniform, v int32) {
	gles2.Uniform1i(int32(u), v)
}

// UniformMatrix4fv implements gl.Context. The matrix is column-major, so no
// transposition happens on upload.
func (*Context) UniformMatrix4fv(u gl.Uniform, m [16]float32) {
	gles2.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

// CreateBuffer implements gl.Context.
func (*Context) CreateBuffer() (gl.Buffer, error) {
	var b uint32
	gles2.GenBuffers(1, &b)
	if b == 0 {
		return 0, fmt.Errorf("%w: buffer", ErrObjectAllocation)
	}
	return gl.Buffer(b), nil
}

// BindBuffer implements gl.Context.
func (*Context) BindBuffer(b gl.Buffer) {
	gles2.BindBuffer(gles2.ARRAY_BUFFER, uint32(b))
}

// BufferData implements gl.Context.
func (*Context) BufferData(data []float32) {
	gles2.BufferData(gles2.ARRAY_BUFFER, len(data)*4, gles2.Ptr(data), gles2.STATIC_DRAW)
}

// DeleteBuffer implements gl.Context.
func (*Context) DeleteBuffer(b gl.Buffer) {
	u := uint32(b)
	gles2.DeleteBuffers(1, &u)
}

// EnableVertexAttribArray implements gl.Context.
func (*Context) EnableVertexAttribArray(a gl.Attrib) {
	gles2.EnableVertexAttribArray(uint32(a))
}

// DisableVertexAttribArray implements gl.Context.
func (*Context) DisableVertexAttribArray(a gl.Attrib) {
	gles2.DisableVertexAttribArray(uint32(a))
}

// VertexAttribPointer implements gl.Context.
func (*Context) VertexAttribPointer(a gl.Attrib, size, stride, offset int) {
	gles2.VertexAttribPointerWithOffset(uint32(a), int32(size), gles2.FLOAT, false,
		int32(stride), uintptr(offset))
}

// ActiveTexture implements gl.Context.
func (*Context) ActiveTexture(unit int) {
	gles2.ActiveTexture(gles2.TEXTURE0 + uint32(unit))
}

// BindTexture implements gl.Context.
func (*Context) BindTexture(target gl.TextureTarget, t gl.Texture) {
	var glTarget uint32 = gles2.TEXTURE_2D
	if target == gl.TextureExternalOES {
		glTarget = glTextureExternalOES
	}
	gles2.BindTexture(glTarget, uint32(t))
}

// DrawArrays implements gl.Context.
func (*Context) DrawArrays(mode gl.DrawMode, first, count int) {
	var glMode uint32 = gles2.TRIANGLES
	if mode == gl.TriangleStrip {
		glMode = gles2.TRIANGLE_STRIP
	}
	gles2.DrawArrays(glMode, int32(first), int32(count))
}
