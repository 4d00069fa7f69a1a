package main

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/earther/fallterm/pkg/event"
	"github.com/earther/fallterm/pkg/game"
)

const (
	DefaultStatusText = "Arrows or HJKL to move/drop, Z/X to rotate, R to restart, T for theme, Q to quit"

	// Delay between the game ending and the restart prompt appearing.
	gameOverDelay = 750 * time.Millisecond
)

var (
	closedGUI bool

	app      *tview.Application
	pages    *tview.Pages
	gameGrid *tview.Grid
	mtx      *tview.TextView
	side     *tview.TextView
	recent   *tview.TextView
	gameOver *tview.Modal

	draw   = make(chan event.DrawObject, game.EventQueueSize)
	events = make(chan interface{}, game.EventQueueSize)

	activeGame *game.State

	theme  = themeDark
	blocks = renderBlock(themeDark)

	renderLock   = new(sync.Mutex)
	renderBuffer bytes.Buffer

	logMutex             = new(sync.Mutex)
	wroteFirstLogMessage bool
)

const LogTimeFormat = "3:04:05"

var (
	renderHLine    = []byte(string(tcell.RuneHLine))
	renderVLine    = []byte(string(tcell.RuneVLine))
	renderULCorner = []byte(string(tcell.RuneULCorner))
	renderURCorner = []byte(string(tcell.RuneURCorner))
	renderLLCorner = []byte(string(tcell.RuneLLCorner))
	renderLRCorner = []byte(string(tcell.RuneLRCorner))
)

func initGUI() (*tview.Application, error) {
	app = tview.NewApplication()

	mtx = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	mtx.SetDynamicColors(true)

	side = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	side.SetDynamicColors(true)

	recent = tview.NewTextView().
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true)

	status := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false).
		SetText(DefaultStatusText)

	spacer := tview.NewBox()

	gameGrid = tview.NewGrid().
		SetBorders(false).
		SetRows(game.Rows+2, 1, -1).
		SetColumns(1, game.Cols+2, 12, -1).
		AddItem(spacer, 0, 0, 2, 1, 0, 0, false).
		AddItem(mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(side, 0, 2, 1, 2, 0, 0, false).
		AddItem(status, 1, 1, 1, 3, 0, 0, false).
		AddItem(recent, 2, 1, 1, 3, 0, 0, false)

	gameOver = tview.NewModal().
		AddButtons([]string{"New Game", "Not Now"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			pages.HidePage("gameover")
			app.SetFocus(pages)

			if buttonLabel == "New Game" {
				activeGame.Restart()
			}
		})

	pages = tview.NewPages().
		AddPage("game", gameGrid, true, true).
		AddPage("gameover", gameOver, true, false)

	app.SetInputCapture(handleKeypress)
	app.SetRoot(pages, true)

	go handleDraw()
	go handleEvents()

	return app, nil
}

func closeGUI() {
	if closedGUI {
		return
	}
	closedGUI = true

	app.Stop()
}

func handleDraw() {
	var o event.DrawObject
	for o = range draw {
		switch o {
		case event.DrawMessages:
			app.QueueUpdateDraw(func() {})
		case event.DrawScore:
			app.QueueUpdateDraw(renderScore)
		default:
			app.QueueUpdateDraw(func() {
				renderPlayerMatrix()
				renderScore()
			})
		}
	}
}

func handleEvents() {
	for e := range events {
		switch ev := e.(type) {
		case *event.ScoreEvent:
			draw <- event.DrawScore
		case *event.GameOverEvent:
			logMessage(fmt.Sprintf("Game over - score %d", ev.Score))

			score := ev.Score
			time.AfterFunc(gameOverDelay, func() {
				app.QueueUpdateDraw(func() {
					gameOver.SetText(fmt.Sprintf("Game over\n\nScore: %d\n\nPlay again?", score))
					pages.ShowPage("gameover")
					app.SetFocus(pages)
				})
			})
		}
	}
}

func renderPlayerMatrix() {
	g := activeGame
	if g == nil {
		return
	}

	renderLock.Lock()
	renderMatrix(g)
	mtx.Clear()
	mtx.Write(renderBuffer.Bytes())
	renderLock.Unlock()
}

func renderMatrix(g *game.State) {
	renderBuffer.Reset()

	g.Lock()
	defer g.Unlock()

	renderBuffer.Write(renderULCorner)
	for x := 0; x < game.Cols; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderURCorner)
	renderBuffer.WriteRune('\n')

	for y := 0; y < game.Rows; y++ {
		renderBuffer.Write(renderVLine)
		for x := 0; x < game.Cols; x++ {
			renderBuffer.Write(blocks[g.Cell(x, y)])
		}
		renderBuffer.Write(renderVLine)
		renderBuffer.WriteRune('\n')
	}

	renderBuffer.Write(renderLLCorner)
	for x := 0; x < game.Cols; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderLRCorner)
}

func renderScore() {
	g := activeGame
	if g == nil {
		return
	}

	g.Lock()
	score := g.Score
	running := g.Running
	g.Unlock()

	state := ""
	if !running {
		state = "\n\n Stopped"
	}

	side.Clear()
	fmt.Fprintf(side, "\n Score\n\n %d%s", score, state)
}

func setTheme(t Theme) {
	renderLock.Lock()
	theme = t
	blocks = renderBlock(t)
	renderLock.Unlock()

	if err := saveTheme(t); err != nil {
		log.Printf("failed to save theme: %s", err)
	}

	logMessage("Theme: " + t.Name)
	draw <- event.DrawAll
}

func logMessage(message string) {
	logMutex.Lock()

	var prefix string
	if !wroteFirstLogMessage {
		wroteFirstLogMessage = true
	} else {
		prefix = "\n"
	}

	recent.Write([]byte(prefix + time.Now().Format(LogTimeFormat) + " " + message))
	recent.ScrollToEnd()

	logMutex.Unlock()
}
