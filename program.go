package glfx

import (
	"fmt"

	"github.com/gogpu/glfx/gl"
)

// compileProgram compiles and links a vertex/fragment shader pair into one
// GPU program. It runs exactly once per filter instance, during Init, never
// per frame.
//
// On any failure path every partially created GPU object is released before
// returning, including the case where the vertex stage compiled and the
// fragment stage failed. On success only the linked program is retained;
// the individual shader objects are deleted once linked, as the program
// keeps the compiled stages alive.
func compileProgram(gc gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	vs, err := compileShader(gc, gl.VertexShader, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer gc.DeleteShader(vs)

	fs, err := compileShader(gc, gl.FragmentShader, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer gc.DeleteShader(fs)

	program, err := gc.CreateProgram()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrResource, err)
	}
	gc.AttachShader(program, vs)
	gc.AttachShader(program, fs)
	gc.LinkProgram(program)
	if !gc.ProgramLinked(program) {
		log := gc.ProgramInfoLog(program)
		gc.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, log)
	}
	return program, nil
}

// compileShader compiles a single shader stage, releasing the shader object
// if compilation fails.
func compileShader(gc gl.Context, t gl.ShaderType, src string) (gl.Shader, error) {
	s, err := gc.CreateShader(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrResource, err)
	}
	gc.ShaderSource(s, src)
	gc.CompileShader(s)
	if !gc.ShaderCompiled(s) {
		log := gc.ShaderInfoLog(s)
		gc.DeleteShader(s)
		return 0, fmt.Errorf("%w: %s shader: %s", ErrCompile, t, log)
	}
	return s, nil
}
