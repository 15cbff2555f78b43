package glfx

import "github.com/gogpu/glfx/gl"

const gammaFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;
uniform lowp float gamma;

void main()
{
    lowp vec4 textureColor = texture2D(sTexture, vTextureCoord);
    gl_FragColor = vec4(pow(textureColor.rgb, vec3(gamma)), textureColor.w);
}
`

type gammaParams struct {
	gamma float32
}

func (p gammaParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat(gc, "gamma", p.gamma)
}

// NewGamma creates a filter that applies a power-law transfer to video
// pixels: output RGB is input RGB raised to gamma, alpha unchanged.
// Gamma 1 is the identity; useful range is roughly 0 to 3.
func NewGamma(gamma float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, gammaFragmentShader, gammaParams{
		gamma: gamma,
	}, opts...)
}
