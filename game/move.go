package game

import "fmt"

// Move claims the edge at (Row, Col) for Player.
type Move struct {
	Row    int
	Col    int
	Player Player
}

func NewMove(row, col int, p Player) Move {
	return Move{Row: row, Col: col, Player: p}
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Player, m.Row, m.Col)
}
