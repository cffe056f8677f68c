package entity

import "gridsnake/game/types"

// Snake is the ordered body of the player's snake. The head is at index 0.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// PushFront moves the head onto newHead without shrinking the tail.
func (s *Snake) PushFront(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// PopBack removes the tail cell. The body never becomes empty.
func (s *Snake) PopBack() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Neck returns the segment right behind the head, if any.
func (s *Snake) Neck() (types.Point, bool) {
	if len(s.Body) < 2 {
		return types.Point{}, false
	}
	return s.Body[1], true
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is any cell of the body, tail included.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
