package raycast

// Side records which kind of grid line a ray crossed on its final step
type Side int

// Side constants
const (
	// SideX means the ray stepped along X, from one row to the next, and struck a
	// north or south face
	SideX Side = iota
	// SideY means the ray stepped along Y, from one column to the next, and struck an
	// east or west face
	SideY
)

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case SideX:
		return "X"
	case SideY:
		return "Y"
	default:
		return "Unknown"
	}
}
