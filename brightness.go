package glfx

import "github.com/gogpu/glfx/gl"

const brightnessFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;
uniform lowp float brightness;

void main()
{
    lowp vec4 textureColor = texture2D(sTexture, vTextureCoord);
    gl_FragColor = vec4(textureColor.rgb + vec3(brightness), textureColor.w);
}
`

type brightnessParams struct {
	brightness float32
}

func (p brightnessParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat(gc, "brightness", p.brightness)
}

// NewBrightness creates a filter that shifts the brightness of video
// pixels: output RGB is input RGB plus brightness, alpha unchanged.
// Useful range is -1 to 1, with 0 as the identity.
func NewBrightness(brightness float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, brightnessFragmentShader, brightnessParams{
		brightness: brightness,
	}, opts...)
}
