package glfx

import "github.com/gogpu/glfx/gl"

const saturationFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;
uniform lowp float saturation;

const mediump vec3 luminanceWeighting = vec3(0.2125, 0.7154, 0.0721);

void main()
{
    lowp vec4 textureColor = texture2D(sTexture, vTextureCoord);
    lowp float luminance = dot(textureColor.rgb, luminanceWeighting);
    lowp vec3 greyScaleColor = vec3(luminance);
    gl_FragColor = vec4(mix(greyScaleColor, textureColor.rgb, saturation), textureColor.w);
}
`

type saturationParams struct {
	saturation float32
}

func (p saturationParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat(gc, "saturation", p.saturation)
}

// NewSaturation creates a filter that mixes between the BT.709 luminance
// gray of each pixel and its original color. Saturation 1 is the identity,
// 0 is fully desaturated, values above 1 oversaturate.
func NewSaturation(saturation float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, saturationFragmentShader, saturationParams{
		saturation: saturation,
	}, opts...)
}
