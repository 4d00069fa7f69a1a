package event

// DrawObject hints the GUI at what needs repainting.
type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawMatrix
	DrawScore
	DrawMessages
)

type Event struct {
	Message string
}

type ScoreEvent struct {
	Event
	Score int
}

type GameOverEvent struct {
	Event
	Score int
}
