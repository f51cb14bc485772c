package core

// DrawKind identifies what a Drawable represents.
type DrawKind int

const (
	DrawShip DrawKind = iota
	DrawAlien
	DrawBolt
	DrawDefenseLine
	DrawText
)

// String returns a human-readable name for the kind.
func (k DrawKind) String() string {
	switch k {
	case DrawShip:
		return "ship"
	case DrawAlien:
		return "alien"
	case DrawBolt:
		return "bolt"
	case DrawDefenseLine:
		return "defense-line"
	case DrawText:
		return "text"
	default:
		return "unknown"
	}
}

// TextAlign controls how a text drawable is placed around its anchor.
type TextAlign int

const (
	AlignCenter TextAlign = iota
	AlignLeft
)

// Drawable is one entity the simulation asks the renderer to draw.
// Geometry is in world space; text drawables use Box.X/Box.Y as the anchor.
type Drawable struct {
	Kind  DrawKind
	Box   Box
	Text  string
	Align TextAlign

	// Style carries kind-specific detail: the formation style of an alien,
	// the death animation frame of a ship (-1 while intact), or the velocity
	// sign of a bolt.
	Style int
}
