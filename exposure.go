package glfx

import "github.com/gogpu/glfx/gl"

const exposureFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;
uniform highp float exposure;

void main()
{
    highp vec4 textureColor = texture2D(sTexture, vTextureCoord);
    gl_FragColor = vec4(textureColor.rgb * pow(2.0, exposure), textureColor.w);
}
`

type exposureParams struct {
	exposure float32
}

func (p exposureParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat(gc, "exposure", p.exposure)
}

// NewExposure creates a filter that adjusts the exposure of video pixels:
// output RGB is input RGB scaled by 2^exposure, alpha unchanged. Exposure 0
// leaves the frame untouched; each whole stop doubles or halves the light.
func NewExposure(exposure float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, exposureFragmentShader, exposureParams{
		exposure: exposure,
	}, opts...)
}
