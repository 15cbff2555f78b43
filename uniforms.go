package glfx

import "github.com/gogpu/glfx/gl"

// Uniforms memoizes uniform name to location lookups for one linked
// program, so per-frame uniform uploads avoid redundant GPU queries.
//
// A name absent from the linked program resolves to [gl.NoUniform] and is
// cached like any other result; every typed setter silently skips it. This
// is deliberate tolerance, not an oversight: filter variants differ in
// which of the framework's optional uniforms their shader declares, and
// drivers may optimize unused uniforms away entirely. A missing uniform
// must never be fatal mid-frame.
//
// For a given program, a name always resolves to the same location for the
// program's lifetime, so the cache is populated lazily and never
// invalidated.
type Uniforms struct {
	program   gl.Program
	locations map[string]gl.Uniform
}

// NewUniforms creates an empty cache keyed to program.
func NewUniforms(program gl.Program) *Uniforms {
	return &Uniforms{
		program:   program,
		locations: make(map[string]gl.Uniform),
	}
}

// Location resolves a uniform name to its location, querying the context
// exactly once per name.
func (u *Uniforms) Location(gc gl.Context, name string) gl.Uniform {
	if loc, ok := u.locations[name]; ok {
		return loc
	}
	loc := gc.UniformLocation(u.program, name)
	u.locations[name] = loc
	return loc
}

// SetFloat uploads a float uniform.
func (u *Uniforms) SetFloat(gc gl.Context, name string, v float32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.Uniform1f(loc, v)
	}
}

// SetFloat2 uploads a vec2 uniform.
func (u *Uniforms) SetFloat2(gc gl.Context, name string, x, y float32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.Uniform2f(loc, x, y)
	}
}

// SetFloat3 uploads a vec3 uniform.
func (u *Uniforms) SetFloat3(gc gl.Context, name string, x, y, z float32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.Uniform3f(loc, x, y, z)
	}
}

// SetFloat4 uploads a vec4 uniform.
func (u *Uniforms) SetFloat4(gc gl.Context, name string, x, y, z, w float32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.Uniform4f(loc, x, y, z, w)
	}
}

// SetInt uploads an int uniform. Sampler uniforms are set this way too,
// with the texture unit index as the value.
func (u *Uniforms) SetInt(gc gl.Context, name string, v int32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.Uniform1i(loc, v)
	}
}

// SetMatrix4 uploads a 4x4 matrix uniform, column-major.
func (u *Uniforms) SetMatrix4(gc gl.Context, name string, m [16]float32) {
	if loc := u.Location(gc, name); loc != gl.NoUniform {
		gc.UniformMatrix4fv(loc, m)
	}
}
