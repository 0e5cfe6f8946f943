package generator

import (
	"math/rand"

	"raycaster/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning. Each room is lined with
// its own wall type so rooms read as distinct spaces in the first-person view.
type BSPGenerator struct {
	Rand *rand.Rand
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
	wall                world.CellType
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// roomWalls are the wall types rooms are lined with; type 1 stays for the outer mass
var roomWalls = []world.CellType{2, 3, 4}

// Generate creates a new rows x cols grid
func (g *BSPGenerator) Generate(rows, cols int) *world.Grid {
	c := newCanvas(rows, cols, 1)

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cols - 2,
		height: rows - 2,
	}

	g.split(root, minNodeSize)
	g.createRooms(root)
	g.carveRooms(c, root)
	g.connectRooms(c, root)

	return c.grid()
}

// split recursively splits a BSP node
func (g *BSPGenerator) split(node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = g.Rand.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + g.Rand.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + g.Rand.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	g.split(node.left, minSize)
	g.split(node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func (g *BSPGenerator) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	wall := roomWalls[g.Rand.Intn(len(roomWalls))]

	// A leaf too small to pad becomes one room
	if node.width < minRoomSize+roomPadding || node.height < minRoomSize+roomPadding {
		node.room = &bspRoom{x: node.x, y: node.y, width: node.width, height: node.height, wall: wall}
		return
	}

	roomWidth := minRoomSize + g.Rand.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + g.Rand.Intn(node.height-minRoomSize-roomPadding+1)

	roomX := node.x + g.Rand.Intn(node.width-roomWidth)
	roomY := node.y + g.Rand.Intn(node.height-roomHeight)

	node.room = &bspRoom{x: roomX, y: roomY, width: roomWidth, height: roomHeight, wall: wall}
}

// carveRooms empties each room and lines the solid cells around it with the room's wall type
func (g *BSPGenerator) carveRooms(c *canvas, node *bspNode) {
	if r := node.room; r != nil {
		for row := r.y - 1; row <= r.y+r.height; row++ {
			for col := r.x - 1; col <= r.x+r.width; col++ {
				inside := row >= r.y && row < r.y+r.height && col >= r.x && col < r.x+r.width
				switch {
				case inside:
					c.set(row, col, world.Empty)
				case c.isPlayable(row, col) && c.get(row, col) == 1:
					c.set(row, col, r.wall)
				}
			}
		}
	}

	if node.left != nil {
		g.carveRooms(c, node.left)
	}
	if node.right != nil {
		g.carveRooms(c, node.right)
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func (g *BSPGenerator) connectRooms(c *canvas, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)

	if leftRoom != nil && rightRoom != nil {
		leftCenterX := leftRoom.x + leftRoom.width/2
		leftCenterY := leftRoom.y + leftRoom.height/2
		rightCenterX := rightRoom.x + rightRoom.width/2
		rightCenterY := rightRoom.y + rightRoom.height/2

		if g.Rand.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveHorizontal(c, leftCenterY, leftCenterX, rightCenterX)
			carveVertical(c, rightCenterX, leftCenterY, rightCenterY)
		} else {
			carveVertical(c, leftCenterX, leftCenterY, rightCenterY)
			carveHorizontal(c, rightCenterY, leftCenterX, rightCenterX)
		}
	}

	g.connectRooms(c, node.left)
	g.connectRooms(c, node.right)
}

func carveHorizontal(c *canvas, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		c.set(row, col, world.Empty)
	}
}

func carveVertical(c *canvas, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		c.set(row, col, world.Empty)
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func (g *BSPGenerator) getRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = g.getRoom(node.left)
	}
	if node.right != nil {
		rightRoom = g.getRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if g.Rand.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}
