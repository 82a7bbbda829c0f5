package game

// Side identifies one of the two seats at the table.
type Side int

const (
	None Side = iota // no winner, the game was cut off
	Player1
	Player2
)

func (s Side) Other() Side {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return None
	}
}

func (s Side) String() string {
	switch s {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "None"
	}
}
