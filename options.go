package glfx

// Option configures a FrameFilter during creation.
//
// Geometry options place the filter's quad relative to the output frame.
// Fields left unset keep their defaults: full frame size, centered,
// unrotated. A filter created with no geometry options at all uses the
// identity model transform, so its MVP equals the renderer's VP matrix
// exactly.
//
// Example:
//
//	// Exposure over the whole frame:
//	f := glfx.NewExposure(-1)
//
//	// Exposure over a half-size, rotated overlay:
//	f := glfx.NewExposure(-1,
//	    glfx.WithSize(glfx.Pt(0.5, 0.5)),
//	    glfx.WithPosition(glfx.Pt(0.25, 0.25)),
//	    glfx.WithRotation(90),
//	)
type Option func(*FrameFilter)

// WithGeometry sets the complete quad geometry at once. All fields are
// taken as given; start from DefaultGeometry to override selectively.
func WithGeometry(g Geometry) Option {
	return func(f *FrameFilter) {
		f.geometry = &g
	}
}

// ensureGeometry lazily installs the default geometry so individual options
// can be combined in any order.
func ensureGeometry(f *FrameFilter) *Geometry {
	if f.geometry == nil {
		g := DefaultGeometry()
		f.geometry = &g
	}
	return f.geometry
}

// WithSize sets the quad size as a fraction of the frame extent in X and Y.
func WithSize(size Point) Option {
	return func(f *FrameFilter) {
		ensureGeometry(f).Size = size
	}
}

// WithPosition sets the displacement of the quad's center from the frame
// center, in frame-normalized units, fourth-quadrant convention.
func WithPosition(position Point) Option {
	return func(f *FrameFilter) {
		ensureGeometry(f).Position = position
	}
}

// WithRotation sets the quad's rotation in degrees, counter-clockwise,
// about the quad's own center.
func WithRotation(degrees float32) Option {
	return func(f *FrameFilter) {
		ensureGeometry(f).Rotation = degrees
	}
}
