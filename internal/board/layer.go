package board

// LayerKind indexes the fixed per-cell layer slots.
type LayerKind uint8

const (
	LayerGround  LayerKind = iota // terrain drawn under the stone
	LayerOverlay                  // decoration drawn over an empty cell

	LayerCount // always last: number of layer slots
)

// String returns the string representation of a layer kind.
func (k LayerKind) String() string {
	switch k {
	case LayerGround:
		return "ground"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// ParseLayerKind converts a name back to a LayerKind.
func ParseLayerKind(name string) (LayerKind, bool) {
	switch name {
	case "ground":
		return LayerGround, true
	case "overlay":
		return LayerOverlay, true
	default:
		return LayerCount, false
	}
}

// Layer is a static cell attribute. Layers coexist with the occupant and
// are not affected by gravity.
type Layer struct {
	Kind    LayerKind
	Variant int
}
