// Package gltest provides a recording, in-memory implementation of
// gl.Context for testing filters without a real graphics context.
//
// The fake assigns handles sequentially, tracks resource lifetimes, counts
// uniform-location queries per name, and snapshots all uniform values at
// each draw call so tests can assert exactly what a frame was rendered with.
package gltest

import (
	"errors"
	"fmt"

	"github.com/gogpu/glfx/gl"
)

// ErrExhausted is returned by Create* methods when exhaustion is injected
// via the Exhaust* fields.
var ErrExhausted = errors.New("gltest: GPU resources exhausted")

// Draw records a single DrawArrays call and the GL state it was issued with.
type Draw struct {
	Mode    gl.DrawMode
	First   int
	Count   int
	Program gl.Program

	// Uniforms holds float uniform values by name at draw time.
	// Matrices are recorded as 16 column-major floats.
	Uniforms map[string][]float32

	// Ints holds integer uniform values by name at draw time.
	Ints map[string]int32

	// Texture is the texture bound on the active unit at draw time.
	Texture       gl.Texture
	TextureTarget gl.TextureTarget
	TextureUnit   int

	// Attribs holds the vertex attribute layout by name at draw time.
	Attribs map[string]AttribPointer
}

// AttribPointer records a VertexAttribPointer configuration.
type AttribPointer struct {
	Size    int
	Stride  int
	Offset  int
	Enabled bool
}

type shaderState struct {
	typ      gl.ShaderType
	source   string
	compiled bool
	log      string
}

type programState struct {
	shaders []gl.Shader
	linked  bool
	log     string
}

// Context is a fake gl.Context. The zero value is not usable; create one
// with NewContext.
type Context struct {
	// Failure injection. Set before driving the code under test.
	ExhaustShaders  bool
	ExhaustPrograms bool
	ExhaustBuffers  bool

	compileFail map[gl.ShaderType]string
	linkFail    string

	declared    map[string]bool // nil: every queried uniform exists
	declaredAtt map[string]bool // nil: every queried attribute exists

	nextHandle uint32
	nextLoc    int32

	shaders  map[gl.Shader]*shaderState
	programs map[gl.Program]*programState
	buffers  map[gl.Buffer][]float32

	uniformLocs  map[gl.Program]map[string]gl.Uniform
	attribLocs   map[gl.Program]map[string]gl.Attrib
	uniformNames map[gl.Uniform]string
	attribNames  map[gl.Attrib]string

	queries map[string]int

	floats   map[string][]float32
	ints     map[string]int32
	attribs  map[string]AttribPointer
	enabled  map[gl.Attrib]bool
	pointers map[gl.Attrib]AttribPointer

	current     gl.Program
	boundBuffer gl.Buffer

	activeUnit   int
	boundTexture gl.Texture
	boundTarget  gl.TextureTarget

	// Draws records every DrawArrays call in order.
	Draws []Draw
}

// NewContext creates an empty fake context. By default every shader
// compiles, every program links, and every queried uniform and attribute
// name resolves to a location.
func NewContext() *Context {
	return &Context{
		compileFail:  make(map[gl.ShaderType]string),
		shaders:      make(map[gl.Shader]*shaderState),
		programs:     make(map[gl.Program]*programState),
		buffers:      make(map[gl.Buffer][]float32),
		uniformLocs:  make(map[gl.Program]map[string]gl.Uniform),
		attribLocs:   make(map[gl.Program]map[string]gl.Attrib),
		uniformNames: make(map[gl.Uniform]string),
		attribNames:  make(map[gl.Attrib]string),
		queries:      make(map[string]int),
		floats:       make(map[string][]float32),
		ints:         make(map[string]int32),
		attribs:      make(map[string]AttribPointer),
		enabled:      make(map[gl.Attrib]bool),
		pointers:     make(map[gl.Attrib]AttribPointer),
	}
}

// DeclareUniforms restricts the set of uniform names that resolve to a
// location. Names not in the list return gl.NoUniform, mimicking a driver
// that optimized them away or a shader that never declared them.
func (c *Context) DeclareUniforms(names ...string) {
	c.declared = make(map[string]bool, len(names))
	for _, n := range names {
		c.declared[n] = true
	}
}

// DeclareAttribs restricts the set of attribute names that resolve.
func (c *Context) DeclareAttribs(names ...string) {
	c.declaredAtt = make(map[string]bool, len(names))
	for _, n := range names {
		c.declaredAtt[n] = true
	}
}

// FailCompile makes every shader of the given stage fail to compile with
// the given diagnostic log.
func (c *Context) FailCompile(t gl.ShaderType, log string) {
	c.compileFail[t] = log
}

// FailLink makes every program fail to link with the given diagnostic log.
func (c *Context) FailLink(log string) {
	c.linkFail = log
}

// === Inspection ===

// QueryCount returns how many UniformLocation calls were issued for name.
func (c *Context) QueryCount(name string) int { return c.queries[name] }

// LiveShaders returns the number of shader objects not yet deleted.
func (c *Context) LiveShaders() int { return len(c.shaders) }

// LivePrograms returns the number of program objects not yet deleted.
func (c *Context) LivePrograms() int { return len(c.programs) }

// LiveBuffers returns the number of buffer objects not yet deleted.
func (c *Context) LiveBuffers() int { return len(c.buffers) }

// UniformFloats returns the current float values of a named uniform, or nil
// if it was never set.
func (c *Context) UniformFloats(name string) []float32 { return c.floats[name] }

// UniformInt returns the current integer value of a named uniform.
func (c *Context) UniformInt(name string) (int32, bool) {
	v, ok := c.ints[name]
	return v, ok
}

// BufferFloats returns the data uploaded to a buffer.
func (c *Context) BufferFloats(b gl.Buffer) []float32 { return c.buffers[b] }

// CurrentProgram returns the program made current by the last UseProgram.
func (c *Context) CurrentProgram() gl.Program { return c.current }

// ShaderSourceFor returns the source last set on a live shader object.
func (c *Context) ShaderSourceFor(s gl.Shader) string {
	if st, ok := c.shaders[s]; ok {
		return st.source
	}
	return ""
}

// === gl.Context implementation ===

func (c *Context) CreateShader(t gl.ShaderType) (gl.Shader, error) {
	if c.ExhaustShaders {
		return 0, fmt.Errorf("%w: shader object", ErrExhausted)
	}
	c.nextHandle++
	s := gl.Shader(c.nextHandle)
	c.shaders[s] = &shaderState{typ: t}
	return s, nil
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	if st, ok := c.shaders[s]; ok {
		st.source = src
	}
}

func (c *Context) CompileShader(s gl.Shader) {
	st, ok := c.shaders[s]
	if !ok {
		return
	}
	if log, fail := c.compileFail[st.typ]; fail {
		st.compiled = false
		st.log = log
		return
	}
	st.compiled = true
	st.log = ""
}

func (c *Context) ShaderCompiled(s gl.Shader) bool {
	st, ok := c.shaders[s]
	return ok && st.compiled
}

func (c *Context) ShaderInfoLog(s gl.Shader) string {
	if st, ok := c.shaders[s]; ok {
		return st.log
	}
	return ""
}

func (c *Context) DeleteShader(s gl.Shader) { delete(c.shaders, s) }

func (c *Context) CreateProgram() (gl.Program, error) {
	if c.ExhaustPrograms {
		return 0, fmt.Errorf("%w: program object", ErrExhausted)
	}
	c.nextHandle++
	p := gl.Program(c.nextHandle)
	c.programs[p] = &programState{}
	return p, nil
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	if ps, ok := c.programs[p]; ok {
		ps.shaders = append(ps.shaders, s)
	}
}

func (c *Context) LinkProgram(p gl.Program) {
	ps, ok := c.programs[p]
	if !ok {
		return
	}
	if c.linkFail != "" {
		ps.linked = false
		ps.log = c.linkFail
		return
	}
	for _, s := range ps.shaders {
		if st, ok := c.shaders[s]; !ok || !st.compiled {
			ps.linked = false
			ps.log = "attached shader not compiled"
			return
		}
	}
	ps.linked = true
	ps.log = ""
}

func (c *Context) ProgramLinked(p gl.Program) bool {
	ps, ok := c.programs[p]
	return ok && ps.linked
}

func (c *Context) ProgramInfoLog(p gl.Program) string {
	if ps, ok := c.programs[p]; ok {
		return ps.log
	}
	return ""
}

func (c *Context) DeleteProgram(p gl.Program) { delete(c.programs, p) }

func (c *Context) UseProgram(p gl.Program) { c.current = p }

func (c *Context) UniformLocation(p gl.Program, name string) gl.Uniform {
	c.queries[name]++
	if c.declared != nil && !c.declared[name] {
		return gl.NoUniform
	}
	locs, ok := c.uniformLocs[p]
	if !ok {
		locs = make(map[string]gl.Uniform)
		c.uniformLocs[p] = locs
	}
	if loc, ok := locs[name]; ok {
		return loc
	}
	c.nextLoc++
	loc := gl.Uniform(c.nextLoc)
	locs[name] = loc
	c.uniformNames[loc] = name
	return loc
}

func (c *Context) AttribLocation(p gl.Program, name string) gl.Attrib {
	if c.declaredAtt != nil && !c.declaredAtt[name] {
		return gl.NoAttrib
	}
	locs, ok := c.attribLocs[p]
	if !ok {
		locs = make(map[string]gl.Attrib)
		c.attribLocs[p] = locs
	}
	if loc, ok := locs[name]; ok {
		return loc
	}
	c.nextLoc++
	loc := gl.Attrib(c.nextLoc)
	locs[name] = loc
	c.attribNames[loc] = name
	return loc
}

func (c *Context) setFloats(u gl.Uniform, vs ...float32) {
	if u == gl.NoUniform {
		return
	}
	if name, ok := c.uniformNames[u]; ok {
		c.floats[name] = vs
	}
}

func (c *Context) Uniform1f(u gl.Uniform, v float32)          { c.setFloats(u, v) }
func (c *Context) Uniform2f(u gl.Uniform, x, y float32)       { c.setFloats(u, x, y) }
func (c *Context) Uniform3f(u gl.Uniform, x, y, z float32)    { c.setFloats(u, x, y, z) }
func (c *Context) Uniform4f(u gl.Uniform, x, y, z, w float32) { c.setFloats(u, x, y, z, w) }

func (c *Context) Uniform1i(u gl.Uniform, v int32) {
	if u == gl.NoUniform {
		return
	}
	if name, ok := c.uniformNames[u]; ok {
		c.ints[name] = v
	}
}

func (c *Context) UniformMatrix4fv(u gl.Uniform, m [16]float32) {
	c.setFloats(u, m[:]...)
}

func (c *Context) CreateBuffer() (gl.Buffer, error) {
	if c.ExhaustBuffers {
		return 0, fmt.Errorf("%w: buffer object", ErrExhausted)
	}
	c.nextHandle++
	b := gl.Buffer(c.nextHandle)
	c.buffers[b] = nil
	return b, nil
}

func (c *Context) BindBuffer(b gl.Buffer) { c.boundBuffer = b }

func (c *Context) BufferData(data []float32) {
	if _, ok := c.buffers[c.boundBuffer]; ok {
		c.buffers[c.boundBuffer] = append([]float32(nil), data...)
	}
}

func (c *Context) DeleteBuffer(b gl.Buffer) { delete(c.buffers, b) }

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	if a != gl.NoAttrib {
		c.enabled[a] = true
	}
}

func (c *Context) DisableVertexAttribArray(a gl.Attrib) {
	if a != gl.NoAttrib {
		c.enabled[a] = false
	}
}

func (c *Context) VertexAttribPointer(a gl.Attrib, size, stride, offset int) {
	if a == gl.NoAttrib {
		return
	}
	c.pointers[a] = AttribPointer{Size: size, Stride: stride, Offset: offset}
}

func (c *Context) ActiveTexture(unit int) { c.activeUnit = unit }

func (c *Context) BindTexture(target gl.TextureTarget, t gl.Texture) {
	c.boundTarget = target
	c.boundTexture = t
}

func (c *Context) DrawArrays(mode gl.DrawMode, first, count int) {
	d := Draw{
		Mode:          mode,
		First:         first,
		Count:         count,
		Program:       c.current,
		Uniforms:      make(map[string][]float32, len(c.floats)),
		Ints:          make(map[string]int32, len(c.ints)),
		Texture:       c.boundTexture,
		TextureTarget: c.boundTarget,
		TextureUnit:   c.activeUnit,
		Attribs:       make(map[string]AttribPointer, len(c.pointers)),
	}
	for name, vs := range c.floats {
		d.Uniforms[name] = append([]float32(nil), vs...)
	}
	for name, v := range c.ints {
		d.Ints[name] = v
	}
	for a, ptr := range c.pointers {
		ptr.Enabled = c.enabled[a]
		d.Attribs[c.attribNames[a]] = ptr
	}
	c.Draws = append(c.Draws, d)
}
