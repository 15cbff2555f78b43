package glfx

import "github.com/gogpu/glfx/gl"

const contrastFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;
uniform lowp float contrast;

void main()
{
    lowp vec4 textureColor = texture2D(sTexture, vTextureCoord);
    gl_FragColor = vec4(((textureColor.rgb - vec3(0.5)) * contrast + vec3(0.5)), textureColor.w);
}
`

type contrastParams struct {
	contrast float32
}

func (p contrastParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat(gc, "contrast", p.contrast)
}

// NewContrast creates a filter that scales the contrast of video pixels
// about middle gray: output RGB is (input - 0.5) * contrast + 0.5, alpha
// unchanged. Contrast 1 is the identity; 0 collapses to gray.
func NewContrast(contrast float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, contrastFragmentShader, contrastParams{
		contrast: contrast,
	}, opts...)
}
