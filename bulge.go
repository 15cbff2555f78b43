package glfx

import "github.com/gogpu/glfx/gl"

const bulgeFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying highp vec2 vTextureCoord;
uniform samplerExternalOES sTexture;

uniform highp vec2 center;
uniform highp float radius;
uniform highp float scale;

void main()
{
    highp vec2 textureCoordinateToUse = vTextureCoord;
    highp float dist = distance(center, vTextureCoord);
    textureCoordinateToUse -= center;
    if (dist < radius)
    {
        highp float percent = 1.0 - ((radius - dist) / radius) * scale;
        percent = percent * percent;
        textureCoordinateToUse = textureCoordinateToUse * percent;
    }
    textureCoordinateToUse += center;
    gl_FragColor = texture2D(sTexture, textureCoordinateToUse);
}
`

// bulgeParams pushes the distortion uniforms. Parameters are immutable
// after construction.
type bulgeParams struct {
	center Point
	radius float32
	scale  float32
}

func (p bulgeParams) Push(gc gl.Context, u *Uniforms, _ int64) {
	u.SetFloat2(gc, "center", p.center.X, p.center.Y)
	u.SetFloat(gc, "radius", p.radius)
	u.SetFloat(gc, "scale", p.scale)
}

// NewBulgeDistortion creates a filter that applies a radial pinch/bulge
// distortion to the video frame. Texture coordinates within radius of
// center are remapped toward or away from center; coordinates outside pass
// through unchanged. The center itself is a fixed point of the distortion,
// and scale 0 is the identity.
//
// center is in relative 0-1 texture coordinates, radius in relative 0-1
// units, scale is the distortion strength.
func NewBulgeDistortion(center Point, radius, scale float32, opts ...Option) *FrameFilter {
	return New(DefaultVertexShader, bulgeFragmentShader, bulgeParams{
		center: center,
		radius: radius,
		scale:  scale,
	}, opts...)
}
