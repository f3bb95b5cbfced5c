package reversi

// Direction is one of the eight compass directions, ordered
// counter-clockwise starting East.
type Direction uint8

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// DirectionCount is the number of compass directions.
const DirectionCount = 8

// Directions lists every direction in neighbor-table order.
var Directions = [DirectionCount]Direction{
	East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast,
}

// deltas holds the (row, col) offset for each direction. Rows grow downward.
var deltas = [DirectionCount][2]int{
	{0, +1},
	{-1, +1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{+1, -1},
	{+1, 0},
	{+1, +1},
}

// Delta returns the row and column offset of one step in direction d.
func (d Direction) Delta() (drow, dcol int) {
	return deltas[d][0], deltas[d][1]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + DirectionCount/2) % DirectionCount
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case South:
		return "S"
	case SouthEast:
		return "SE"
	default:
		return "?"
	}
}
