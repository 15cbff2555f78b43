package glfx

import "github.com/go-gl/mathgl/mgl32"

// Geometry describes where a filter's quad is rendered relative to the
// output video frame.
//
// The zero value of each field that is left unset by the options defaults
// to "fill the entire frame, centered, unrotated": Size (1,1), Position
// (0,0), Rotation 0.
type Geometry struct {
	// Size is the quad extent as a fraction of the frame extent in X and Y.
	// (1,1) covers the whole frame.
	Size Point

	// Position is the displacement of the quad's center from the frame
	// center, in frame-normalized units, fourth-quadrant convention
	// (0,0 top left, positive Y down). (0,0) keeps the quad centered.
	Position Point

	// Rotation is the quad's rotation in degrees, counter-clockwise,
	// about the quad's own center.
	Rotation float32
}

// DefaultGeometry returns the full-frame, centered, unrotated geometry.
func DefaultGeometry() Geometry {
	return Geometry{Size: Pt(1, 1)}
}

// Model returns the 4x4 model matrix for the geometry, column-major.
//
// The composition order is Rotate(rotation) * Translate(position) *
// Scale(size): scale first, then rotate, then translate, each expressed in
// the previous step's local frame. The order is load-bearing; swapping it
// changes the visual result for any rotated, off-center, non-full-size
// filter.
func (g Geometry) Model() mgl32.Mat4 {
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(g.Rotation))
	t := mgl32.Translate3D(g.Position.X, g.Position.Y, 0)
	s := mgl32.Scale3D(g.Size.X, g.Size.Y, 1)
	return r.Mul4(t).Mul4(s)
}

// ComputeMVP composes the externally supplied view-projection matrix with
// the geometry's model matrix. A nil geometry means "fill the frame": the
// model transform is the identity and the result equals vp exactly, with no
// floating-point drift from redundant multiplication.
//
// Both input and output are column-major, the convention of mgl32 and of
// the VP matrix the renderer configures (orthogonal projection adjusted for
// the video frame's aspect ratio).
func ComputeMVP(vp mgl32.Mat4, g *Geometry) mgl32.Mat4 {
	if g == nil {
		return vp
	}
	return vp.Mul4(g.Model())
}

// mat4FromSlice reads 16 column-major floats starting at offset.
// The caller guarantees the slice is long enough; Init validates this as a
// precondition.
func mat4FromSlice(m []float32, offset int) mgl32.Mat4 {
	var out mgl32.Mat4
	copy(out[:], m[offset:offset+16])
	return out
}
