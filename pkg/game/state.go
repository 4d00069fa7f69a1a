package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/earther/fallterm/pkg/event"
	"github.com/earther/fallterm/pkg/shape"
)

// FallTime is the fixed gravity period.
const FallTime = 500 * time.Millisecond

const EventQueueSize = 20

// State owns the board, the active piece and the score. Exported
// methods lock; methods with an L suffix expect the caller to hold the
// lock already.
type State struct {
	Board Board
	Piece *Piece
	Score int

	Running bool

	// Event receives *event.ScoreEvent and *event.GameOverEvent.
	Event chan<- interface{}

	draw chan<- event.DrawObject
	rand *rand.Rand
	stop chan struct{}

	sync.Mutex
}

// NewState creates a stopped game with an empty board. A seed of 0
// selects a time-based seed. Both channels should be buffered; the
// state sends to them while holding its lock.
func NewState(seed int64, ev chan<- interface{}, draw chan<- event.DrawObject) *State {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	return &State{
		Board: NewBoard(),
		Event: ev,
		draw:  draw,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Start begins the gravity ticker. Starting a running game is a no-op.
func (s *State) Start() {
	s.Lock()
	defer s.Unlock()

	if s.Running {
		return
	}

	s.Running = true
	s.stop = make(chan struct{})

	go s.fall(s.stop)
}

func (s *State) fall(stop chan struct{}) {
	t := time.NewTicker(FallTime)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.Tick()
		}
	}
}

// cancelTickL stops the gravity ticker. Safe to call when no ticker is
// active.
func (s *State) cancelTickL() {
	if s.stop == nil {
		return
	}

	close(s.stop)
	s.stop = nil
}

// Restart resets the board, piece and score and starts a fresh game.
// Callable at any time, mid-game or after game over.
func (s *State) Restart() {
	s.Lock()

	s.cancelTickL()
	s.Board = NewBoard()
	s.Piece = nil
	s.Score = 0
	s.Running = false

	s.sendL(&event.ScoreEvent{Score: 0})
	s.drawL(event.DrawAll)

	s.Unlock()

	s.Start()
}

// Tick runs one step of the fixed-period sequence: clear filled rows,
// update the score, spawn a piece if none is active, apply gravity,
// request a render.
func (s *State) Tick() {
	s.Lock()
	defer s.Unlock()

	s.tickL()
}

func (s *State) tickL() {
	if !s.Running {
		return
	}

	cleared := s.Board.ClearFilled()
	if cleared > 0 {
		s.addScoreL(cleared)
	}

	if s.Piece == nil {
		s.spawnPieceL()
	}

	s.stepDownL()
	s.drawL(event.DrawAll)
}

// spawnPieceL selects one of the 7 kinds uniformly. Repeats are
// possible; there is no bag.
func (s *State) spawnPieceL() {
	s.Piece = NewPiece(shape.Kind(s.rand.Intn(shape.Count)))
}

// StepDown is the soft drop input. No-op while not running.
func (s *State) StepDown() {
	s.Lock()
	defer s.Unlock()

	if !s.Running {
		return
	}

	s.stepDownL()
	s.drawL(event.DrawMatrix)
}

// stepDownL lowers the active piece by one row when possible, otherwise
// the piece is locked.
func (s *State) stepDownL() {
	p := s.Piece
	if p == nil {
		return
	}

	if !s.Board.Collides(p.Shape, p.X, p.Y+1) {
		p.Y++
		return
	}

	s.lockPieceL()
}

// lockPieceL merges the piece into the board. A piece that locks
// without ever descending means the board is full at the spawn row and
// the game ends.
func (s *State) lockPieceL() {
	p := s.Piece

	s.Board.Merge(p)
	s.Piece = nil

	if p.Y == SpawnY {
		s.gameOverL()
	}
}

func (s *State) gameOverL() {
	s.Running = false
	s.cancelTickL()

	s.sendL(&event.GameOverEvent{Score: s.Score})
}

// MoveLeft translates the piece one column left when the target does
// not collide. A render is requested whether or not the move succeeds.
func (s *State) MoveLeft() {
	s.Lock()
	defer s.Unlock()

	s.movePieceL(-1)
}

func (s *State) MoveRight() {
	s.Lock()
	defer s.Unlock()

	s.movePieceL(1)
}

func (s *State) movePieceL(dx int) {
	if !s.Running {
		return
	}

	if p := s.Piece; p != nil && !s.Board.Collides(p.Shape, p.X+dx, p.Y) {
		p.X += dx
	}

	s.drawL(event.DrawMatrix)
}

// Rotate applies a single clockwise rotation. The rotation is discarded
// if the rotated shape collides at the current position; there is no
// wall kick retry at adjusted offsets.
func (s *State) Rotate() {
	s.Lock()
	defer s.Unlock()

	if !s.Running {
		return
	}

	p := s.Piece
	if p == nil {
		return
	}

	if r := p.Shape.Rotated(); !s.Board.Collides(r, p.X, p.Y) {
		p.Shape = r
	}

	s.drawL(event.DrawMatrix)
}

func (s *State) ProcessAction(a event.GameAction) {
	switch a {
	case event.ActionMoveLeft:
		s.MoveLeft()
	case event.ActionMoveRight:
		s.MoveRight()
	case event.ActionSoftDrop:
		s.StepDown()
	case event.ActionRotate:
		s.Rotate()
	case event.ActionRestart:
		s.Restart()
	}
}

// ScoreForLines maps the rows cleared in one pass to a score increment.
func ScoreForLines(cleared int) int {
	switch {
	case cleared <= 0:
		return 0
	case cleared == 1:
		return 10
	case cleared == 2:
		return 30
	case cleared == 3:
		return 50
	default:
		return 100
	}
}

func (s *State) addScoreL(cleared int) {
	s.Score += ScoreForLines(cleared)

	s.sendL(&event.ScoreEvent{Score: s.Score})
}

// Cell returns the fill code visible at board coordinates, active piece
// cells first. The caller holds the lock while rendering.
func (s *State) Cell(x int, y int) int {
	if p := s.Piece; p != nil {
		sx := x - p.X
		sy := y - p.Y

		if sy >= 0 && sy < len(p.Shape) && sx >= 0 && sx < len(p.Shape[sy]) && p.Shape[sy][sx] != 0 {
			return p.Fill
		}
	}

	return s.Board[y][x]
}

func (s *State) sendL(ev interface{}) {
	if s.Event == nil {
		return
	}

	s.Event <- ev
}

func (s *State) drawL(o event.DrawObject) {
	if s.draw == nil {
		return
	}

	s.draw <- o
}

// NewTestState returns a stopped state with drained event and draw
// channels and a deterministic seed.
func NewTestState(seed int64) *State {
	ev := make(chan interface{}, EventQueueSize)
	go func() {
		for range ev {
		}
	}()

	draw := make(chan event.DrawObject, EventQueueSize)
	go func() {
		for range draw {
		}
	}()

	return NewState(seed, ev, draw)
}
