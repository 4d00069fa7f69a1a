package main

import (
	"strings"
	"testing"

	"github.com/earther/fallterm/pkg/game"
	"github.com/earther/fallterm/pkg/shape"
)

func testState() *game.State {
	s := game.NewTestState(1)

	s.Board[19][0] = 1
	s.Board[19][1] = 2
	s.Piece = game.NewPiece(shape.KindT)
	s.Piece.Y = 5

	return s
}

func TestRenderMatrix(t *testing.T) {
	renderLock.Lock()
	defer renderLock.Unlock()

	renderMatrix(testState())

	out := renderBuffer.String()

	lines := strings.Split(out, "\n")
	if len(lines) != game.Rows+2 {
		t.Fatalf("rendered %d lines, want %d", len(lines), game.Rows+2)
	}

	if !strings.Contains(out, "█") {
		t.Error("rendered matrix contains no block cells")
	}
	if !strings.Contains(lines[20], "["+theme.Fills[1]+"]") {
		t.Error("locked cell not rendered with its fill color")
	}
	if !strings.Contains(lines[6], "["+theme.Fills[shape.KindT.Fill()]+"]") {
		t.Error("active piece not rendered with its fill color")
	}
}

func TestRenderBlockPalette(t *testing.T) {
	for _, th := range []Theme{themeDark, themeLight} {
		blocks := renderBlock(th)

		if string(blocks[0]) != " " {
			t.Errorf("%s theme: empty cell renders %q, want blank", th.Name, blocks[0])
		}
		for fill := 1; fill < 8; fill++ {
			if !strings.Contains(string(blocks[fill]), th.Fills[fill]) {
				t.Errorf("%s theme: fill %d does not use palette color %s", th.Name, fill, th.Fills[fill])
			}
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if themeDark.next().Name != "light" || themeLight.next().Name != "dark" {
		t.Error("theme toggle does not alternate between dark and light")
	}

	if themeByName("nonsense").Name != "dark" {
		t.Error("unknown theme name does not fall back to dark")
	}
}

func BenchmarkRenderMatrix(b *testing.B) {
	renderLock.Lock()
	defer renderLock.Unlock()

	s := testState()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		renderMatrix(s)
	}
}
