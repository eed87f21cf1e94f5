package controller

// Direction is the sampled horizontal movement request.
type Direction int

const (
	MoveNone Direction = iota
	MoveLeft
	MoveRight
)

func (d Direction) String() string {
	switch d {
	case MoveNone:
		return "none"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "invalid"
}

// Facing is the direction the sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Intent is the normalized input for a single tick.
type Intent struct {
	Move   Direction
	Action bool
}

// Valid reports whether the intent holds a known direction.
func (i Intent) Valid() bool {
	return i.Move >= MoveNone && i.Move <= MoveRight
}

// Normalize degrades unknown directions to no movement.
func (i Intent) Normalize() Intent {
	if !i.Valid() {
		i.Move = MoveNone
	}
	return i
}
