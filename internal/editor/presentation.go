package editor

// Material names the shading the renderer should use for the mesh surface.
type Material int

const (
	// MaterialBase is opaque, smooth shading.
	MaterialBase Material = iota
	// MaterialTranslucent lets control points behind the surface show through.
	MaterialTranslucent
	// MaterialHighlight is a tinted, faceted surface with a wireframe overlay.
	MaterialHighlight
)

// Presentation is what a mode asks of the renderer. The editor owns no shading resources; the
// renderer interprets this value every frame.
type Presentation struct {
	Material             Material
	Opacity              float32 // 0..1
	Wireframe            bool
	FlatShading          bool
	ControlPointsVisible bool
}

// presentations is indexed by Mode. Values are copied out, never modified.
var presentations = [...]Presentation{
	ModeView: {Material: MaterialBase, Opacity: 1},
	ModeEdit: {Material: MaterialTranslucent, Opacity: 0.5, ControlPointsVisible: true},
	ModeAdd:  {Material: MaterialHighlight, Opacity: 1, Wireframe: true, FlatShading: true, ControlPointsVisible: true},
}

// PresentationFor returns the presentation descriptor for m. Unknown modes get the view descriptor.
func PresentationFor(m Mode) Presentation {
	if !m.Valid() {
		return presentations[ModeView]
	}
	return presentations[m]
}
