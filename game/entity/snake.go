package entity

import (
	"flower-snake/game/types"
)

// Snake is an ordered body of cells, head first
type Snake struct {
	Body []types.Point
}

// NewSnake lays out length segments on row y, heading right,
// with the head at column length-1 and the tail at column 0
func NewSnake(length, y int) *Snake {
	body := make([]types.Point, 0, length)
	for x := length - 1; x >= 0; x-- {
		body = append(body, types.Point{X: x, Y: y})
	}
	return &Snake{Body: body}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends newHead; the body is one segment longer until RemoveTail
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any segment, tail included, is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the body
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
