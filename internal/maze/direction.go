package maze

// Direction is a cardinal movement direction, or Stopped for no motion.
// The player tracks two: the direction it is moving in and the direction
// the last key press asked for.
type Direction uint8

const (
	Stopped Direction = iota
	North
	East
	South
	West
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Delta returns the unit pixel offset for one step in this direction.
// North decreases Y; screen coordinates grow downward.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
