package glfx

// Built-in shader variable names. Custom uniform names declared by a
// variant's fragment shader must match the names its ParameterPusher uses
// exactly; binding is by name and case-sensitive.
const (
	// MVPMatrixUniform is the model-view-projection uniform of the
	// default vertex shader.
	MVPMatrixUniform = "uMVPMatrix"

	// PositionAttribute is the vertex position attribute.
	PositionAttribute = "aPosition"

	// TextureCoordAttribute is the texture coordinate attribute.
	TextureCoordAttribute = "aTextureCoord"

	// TextureUniform is the external video texture sampler, bound to
	// texture unit 0.
	TextureUniform = "sTexture"
)

// DefaultVertexShader is shared by all filter variants unless a variant
// supplies its own. It applies the MVP uniform to the position attribute
// and passes texture coordinates through to the fragment stage unmodified.
const DefaultVertexShader = `
uniform mat4 uMVPMatrix;
attribute vec4 aPosition;
attribute vec2 aTextureCoord;
varying vec2 vTextureCoord;

void main()
{
    gl_Position = uMVPMatrix * aPosition;
    vTextureCoord = aTextureCoord;
}
`

// DefaultFragmentShader samples the external video texture unmodified.
// A FrameFilter built from the default shader pair is a passthrough.
const DefaultFragmentShader = `
#extension GL_OES_EGL_image_external : require
precision mediump float;

varying vec2 vTextureCoord;
uniform samplerExternalOES sTexture;

void main()
{
    gl_FragColor = texture2D(sTexture, vTextureCoord);
}
`
