package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/earther/fallterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []*Keybinding{
	{r: 'z', a: event.ActionRotate},
	{r: 'Z', a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: 'X', a: event.ActionRotate},
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: 'r', a: event.ActionRestart},
	{r: 'R', a: event.ActionRestart},
}

func handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	k := ev.Key()
	r := ev.Rune()

	// Let the game over modal take the keyboard when visible.
	if gameOverVisible() {
		return ev
	}

	switch {
	case k == tcell.KeyEscape || k == tcell.KeyCtrlC || r == 'q' || r == 'Q':
		closeGUI()
		done <- true
		return nil
	case r == 't' || r == 'T':
		setTheme(theme.next())
		return nil
	}

	for _, bind := range keybindings {
		if bind.k != 0 && bind.k != k {
			continue
		}
		if bind.k == 0 && (k != tcell.KeyRune || bind.r != r) {
			continue
		}

		activeGame.ProcessAction(bind.a)
		return nil
	}

	return ev
}

func gameOverVisible() bool {
	if pages == nil {
		return false
	}

	name, _ := pages.GetFrontPage()
	return name == "gameover"
}
