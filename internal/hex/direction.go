package hex

// Direction names one of the six hex neighbours.
type Direction uint8

const (
	DirUp Direction = iota
	DirUpRight
	DirDownRight
	DirDown
	DirDownLeft
	DirUpLeft
)

// Directions lists all six directions clockwise starting at Up.
var Directions = [6]Direction{DirUp, DirUpRight, DirDownRight, DirDown, DirDownLeft, DirUpLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirUpRight:
		return "UpRight"
	case DirDownRight:
		return "DownRight"
	case DirDown:
		return "Down"
	case DirDownLeft:
		return "DownLeft"
	case DirUpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// Vector returns the unit coordinate for this direction.
func (d Direction) Vector() Coord {
	switch d {
	case DirUp:
		return Up
	case DirUpRight:
		return UpRight
	case DirDownRight:
		return DownRight
	case DirDown:
		return Down
	case DirDownLeft:
		return DownLeft
	case DirUpLeft:
		return UpLeft
	default:
		return Zero
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	if d > DirUpLeft {
		return d
	}
	return (d + 3) % 6
}
