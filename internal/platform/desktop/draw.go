package desktop

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/game"
)

// Pixel layout. The debug font is 6x16 pixels per glyph.
const (
	cellPx    = 28
	previewPx = 16
	glyphW    = 6
	glyphH    = 16

	boardX = 24
	boardY = 40
	boardW = board.Width * cellPx
	boardH = board.Height * cellPx

	hudX = boardX + boardW + 24

	screenWidth  = hudX + 200
	screenHeight = boardY + boardH + 24
)

// cellRect returns the top-left pixel of a grid cell. Row 0 is at the bottom.
func cellRect(p board.Point) (x, y float32) {
	return float32(boardX + p.X*cellPx), float32(boardY + (board.Height-1-p.Y)*cellPx)
}

func drawText(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

func drawTextCentered(dst *ebiten.Image, s string, cx, y int) {
	drawText(dst, s, cx-len(s)*glyphW/2, y)
}

func (a *App) drawBoard(dst *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(dst, boardX, boardY, boardW, boardH, wellColor, false)
	vector.DrawFilledRect(dst, boardX, boardY, boardW, cellPx, overflowColor, false)

	for row := range board.Height {
		for col := range board.Width {
			x, y := cellRect(board.Point{X: col, Y: row})
			vector.StrokeRect(dst, x, y, cellPx, cellPx, 1, gridLineColor, false)

			v := snap.Grid[row][col]
			if v == 0 {
				continue
			}
			bg := rgb(core.TileColor(snap.Buckets[row][col]))
			vector.DrawFilledRect(dst, x+1, y+1, cellPx-2, cellPx-2, bg, false)
			label := tileLabel(v)
			drawText(dst, label, int(x)+(cellPx-len(label)*glyphW)/2, int(y)+(cellPx-glyphH)/2)
		}
	}

	if !snap.GameOver {
		for _, p := range a.game.Current().GhostCells(a.game.Grid()) {
			if p.Y >= board.Height {
				continue
			}
			x, y := cellRect(p)
			vector.StrokeRect(dst, x+2, y+2, cellPx-4, cellPx-4, 2, ghostColor, false)
		}
	}

	pc := rgb(game.PieceColor(snap.Current.Shape))
	for _, p := range snap.Current.Cells {
		if p.Y >= board.Height {
			continue
		}
		x, y := cellRect(p)
		vector.DrawFilledRect(dst, x+1, y+1, cellPx-2, cellPx-2, pc, false)
	}

	vector.StrokeRect(dst, boardX-1, boardY-1, boardW+2, boardH+2, 2, rgb(core.ColorGray), false)
}

// tileLabel shortens values that do not fit a cell.
func tileLabel(v int) string {
	if v >= 10000 {
		return strconv.Itoa(v/1024) + "k"
	}
	return strconv.Itoa(v)
}

func (a *App) drawHUD(dst *ebiten.Image, snap game.Snapshot) {
	drawText(dst, "TETRIS 2048", boardX, 12)

	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Max:   %d", snap.MaxTile),
		fmt.Sprintf("Speed: %s", snap.Speed.Label()),
		"",
		"Next:",
	}
	y := boardY
	for _, l := range lines {
		drawText(dst, l, hudX, y)
		y += glyphH + 4
	}

	pc := rgb(game.PieceColor(snap.Next))
	for _, o := range board.Offsets(snap.Next, 0) {
		px := float32(hudX + 8 + o.X*previewPx)
		py := float32(y + (3-o.Y)*previewPx)
		vector.DrawFilledRect(dst, px, py, previewPx-1, previewPx-1, pc, false)
	}
	y += 5 * previewPx

	for _, l := range []string{
		"Left/Right  move",
		"Up          rotate",
		"Down        soft drop",
		"Space       hard drop",
		"P/Esc       pause",
		"Q           quit",
	} {
		drawText(dst, l, hudX, y)
		y += glyphH + 2
	}
}

func (a *App) drawMenu(dst *ebiten.Image) {
	cx := screenWidth / 2
	drawTextCentered(dst, "T E T R I S   2 0 4 8", cx, 120)
	drawTextCentered(dst, "Choose a speed", cx, 160)

	y := 210
	for i, p := range config.Presets {
		line := fmt.Sprintf("%-7s %4dms", p.Label(), a.cfg.FallDelay(p).Milliseconds())
		if best, ok := a.best[p]; ok {
			line += fmt.Sprintf("   best %d", best)
		}
		if i == a.cursor {
			w := float32(len(line)*glyphW + 24)
			vector.DrawFilledRect(dst, float32(cx)-w/2, float32(y-4), w, glyphH+8, focusColor, false)
		}
		drawTextCentered(dst, line, cx, y)
		y += glyphH + 16
	}

	drawTextCentered(dst, "Up/Down choose  Enter play  Q quit", cx, y+30)
}

func drawOverlay(dst *ebiten.Image, lines []string) {
	h := len(lines)*(glyphH+4) + 32
	w := boardW - 2*cellPx
	x := boardX + cellPx
	y := boardY + (boardH-h)/2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), overlayColor, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, color.White, false)

	ty := y + 16
	for _, l := range lines {
		drawTextCentered(dst, l, x+w/2, ty)
		ty += glyphH + 4
	}
}
