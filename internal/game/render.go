package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/core"
)

const (
	cellWidth = 4 // Characters per grid column

	boardW = board.Width*cellWidth + 2 // +2 for the side borders
	boardH = board.Height + 2          // +2 for top and bottom borders
	hudW   = 24

	minScreenW = boardW
	minScreenH = boardH + 1
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW - hudW) / 2
	if boardX < 0 || g.screenW < boardW+hudW {
		boardX = 0
	}
	boardY := 1

	dst.DrawTextColored(boardX, 0, "TETRIS 2048", core.ColorBrightYellow)

	g.renderBoard(dst, boardX, boardY)
	if g.screenW >= boardW+hudW {
		g.renderHUD(dst, boardX+boardW+2, boardY)
	} else {
		// Narrow terminal: score only, in the title row
		score := fmt.Sprintf("Score: %d", g.grid.Score())
		dst.DrawText(boardX+boardW-len(score), 0, score)
	}

	switch g.phase {
	case PhasePaused:
		g.renderOverlay(dst, boardX, boardY, []string{"PAUSED", "", "P to resume"}, core.ColorBrightCyan)
	case PhaseGameOver:
		title := "GAME OVER"
		color := core.ColorBrightRed
		if g.won {
			title = "YOU WIN!"
			color = core.ColorBrightGreen
		}
		g.renderOverlay(dst, boardX, boardY, []string{
			title,
			"",
			fmt.Sprintf("Score: %d", g.grid.Score()),
			fmt.Sprintf("Max tile: %d", g.grid.MaxTile()),
			"",
			"R restart  Q quit",
		}, color)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	dst.DrawTextCentered(g.screenH/2, msg)
	dst.DrawTextCentered(g.screenH/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// screenRow maps a grid row (0 = floor) to a screen row inside the border.
func screenRow(boardY, row int) int {
	return boardY + 1 + (board.Height - 1 - row)
}

func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	cells := g.grid.Cells()
	for row := range board.Height {
		y := screenRow(boardY, row)
		for col := range board.Width {
			x := boardX + 1 + col*cellWidth
			tile := cells[row][col]
			if tile.Empty() {
				if row == board.Height-1 {
					dst.DrawTextColored(x, y, " ·· ", core.ColorGray)
				}
				continue
			}
			dst.DrawTextColored(x, y, TileLabel(tile.Value), core.TileColor(tile.Bucket()))
		}
	}

	if g.phase == PhaseGameOver {
		return
	}

	for _, p := range g.current.GhostCells(g.grid) {
		if board.InBounds(p) && !g.grid.Occupied(p) {
			dst.DrawTextColored(boardX+1+p.X*cellWidth, screenRow(boardY, p.Y), "[  ]", core.ColorGray)
		}
	}
	for _, p := range g.current.Cells() {
		if board.InBounds(p) {
			dst.DrawTextColored(boardX+1+p.X*cellWidth, screenRow(boardY, p.Y), "████", PieceColor(g.current.Shape()))
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawText(x, y+1, fmt.Sprintf("Score: %d", g.grid.Score()))
	dst.DrawText(x, y+2, fmt.Sprintf("Max:   %d", g.grid.MaxTile()))
	dst.DrawText(x, y+3, "Speed: "+g.settings.Speed.Label())

	dst.DrawText(x, y+5, "Next:")
	for _, o := range g.next.Offsets() {
		// Preview box is 4 rows tall with Y growing upward
		dst.DrawTextColored(x+o.X*2, y+10-o.Y, "██", PieceColor(g.next.Shape()))
	}

	dst.DrawTextColored(x, y+12, "Merge equal tiles", core.ColorGray)
	dst.DrawTextColored(x, y+13, "vertically. Reach "+strconv.Itoa(g.settings.WinValue), core.ColorGray)
	dst.DrawTextColored(x, y+14, "to win.", core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, boardX, boardY int, lines []string, color core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := boardX + (boardW-w)/2
	y := boardY + (boardH-h)/2

	dst.DrawRect(core.NewRect(x, y, w, h), ' ')
	dst.DrawBox(core.NewRect(x, y, w, h))
	for i, l := range lines {
		lx := x + (w-len([]rune(l)))/2
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(lx, y+1+i, l, c)
	}
}

// TileLabel formats a tile value to fit one grid column.
func TileLabel(v int) string {
	s := strconv.Itoa(v)
	if len(s) > cellWidth {
		s = strconv.Itoa(v/1024) + "k"
	}
	return fmt.Sprintf("%*s", cellWidth, s)
}

// PieceColor returns the display color of a falling piece.
func PieceColor(s board.Shape) core.Color {
	switch s {
	case board.ShapeI:
		return core.ColorCyan
	case board.ShapeO:
		return core.ColorYellow
	case board.ShapeT:
		return core.ColorMagenta
	case board.ShapeS:
		return core.ColorGreen
	case board.ShapeZ:
		return core.ColorRed
	case board.ShapeJ:
		return core.ColorBlue
	case board.ShapeL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}
