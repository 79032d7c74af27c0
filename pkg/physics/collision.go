// pkg/physics/collision.go
package physics

// Colliding reports whether two bodies overlap. A body never collides with
// itself. Edges that exactly meet do not count as overlap.
func Colliding(a, b *Body) bool {
	if a == b {
		return false
	}
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMax.X > bMin.X &&
		aMin.X < bMax.X &&
		aMax.Y > bMin.Y &&
		aMin.Y < bMax.Y
}

// maxQuadTreeDepth bounds subdivision so coincident points cannot recurse forever
const maxQuadTreeDepth = 8

// QuadTree for spatial partitioning
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []interface{}
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	depth int
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	return newQuadTree(boundary, capacity, 0)
}

func newQuadTree(boundary Rect, capacity, depth int) *QuadTree {
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]interface{}, 0, capacity),
		Divided:  false,
		depth:    depth,
	}
}

// Insert stores object at point. It returns false when the point is outside
// the tree's boundary.
func (qt *QuadTree) Insert(point Vector2D, object interface{}) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if (len(qt.Points) < qt.Capacity && !qt.Divided) || qt.depth >= maxQuadTreeDepth {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	if qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object) {
		return true
	}

	// rounding can leave a sliver between quadrants
	qt.Points = append(qt.Points, point)
	qt.Objects = append(qt.Objects, object)
	return true
}

// Subdivide splits the quadtree into four quadrants. Points already held by
// this node stay here; only later inserts descend.
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	nw := Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}
	ne := Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}
	sw := Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}
	se := Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}

	qt.NorthWest = newQuadTree(nw, qt.Capacity, qt.depth+1)
	qt.NorthEast = newQuadTree(ne, qt.Capacity, qt.depth+1)
	qt.SouthWest = newQuadTree(sw, qt.Capacity, qt.depth+1)
	qt.SouthEast = newQuadTree(se, qt.Capacity, qt.depth+1)
	qt.Divided = true
}

// Query returns all objects whose point lies inside area
func (qt *QuadTree) Query(area Rect) []interface{} {
	found := make([]interface{}, 0)
	return qt.query(area, found)
}

func (qt *QuadTree) query(area Rect, found []interface{}) []interface{} {
	if !qt.Boundary.Intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)

	return found
}

// Len returns the number of objects stored in the tree
func (qt *QuadTree) Len() int {
	n := len(qt.Points)
	if qt.Divided {
		n += qt.NorthWest.Len() + qt.NorthEast.Len() + qt.SouthWest.Len() + qt.SouthEast.Len()
	}
	return n
}
