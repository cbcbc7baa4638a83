package world

// plusOrder is the order in which PlusShape visits the arms around the centre.
var plusOrder = []Direction{West, East, North, South}

// PlusShape returns the centre and its four orthogonal neighbours, in the order
// centre, west, east, north, south, keeping only those inside the bounds.
// An out-of-bounds centre yields nil.
func (b Bounds) PlusShape(center Position) []Position {
	if !b.Contains(center) {
		return nil
	}

	shape := make([]Position, 0, 1+len(plusOrder))
	shape = append(shape, center)
	for _, dir := range plusOrder {
		if p := center.Step(dir); b.Contains(p) {
			shape = append(shape, p)
		}
	}
	return shape
}
