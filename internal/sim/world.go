package sim

import (
	"sort"

	"github.com/vmatyush/brickstorm/internal/config"
	"github.com/vmatyush/brickstorm/internal/core"
	"github.com/vmatyush/brickstorm/internal/level"
)

// World dimensions in simulation units. Rendering projects these onto
// whatever terminal size is available.
const (
	WorldW = 160.0
	WorldH = 120.0

	brickAreaTop = 10.0
	brickH       = 4.0
	paddleYPos   = WorldH - 8.0
)

// World owns every live entity. The brick grid is keyed row*cols+col so
// behaviors can look up neighbors in O(1).
type World struct {
	Rows, Cols int
	CellW      float64

	Bricks      map[int]*Brick
	Balls       []*Ball
	PowerUps    []*PowerUp
	Projectiles []*Projectile
	Paddle      Paddle

	maxBalls int
}

// NewWorld builds an empty world sized for a rows x cols brick grid.
func NewWorld(rows, cols, maxBalls int) *World {
	cellW := WorldW / float64(cols)
	return &World{
		Rows:     rows,
		Cols:     cols,
		CellW:    cellW,
		Bricks:   make(map[int]*Brick),
		maxBalls: maxBalls,
	}
}

// GridKey maps a grid cell to its brick map key. Out-of-grid cells get -1.
func (w *World) GridKey(row, col int) int {
	if row < 0 || row >= w.Rows || col < 0 || col >= w.Cols {
		return -1
	}
	return row*w.Cols + col
}

// CellRect returns the world-space footprint of a grid cell.
func (w *World) CellRect(row, col int) core.RectF {
	return core.RectF{
		X: float64(col) * w.CellW,
		Y: brickAreaTop + float64(row)*brickH,
		W: w.CellW,
		H: brickH,
	}
}

// Populate fills the brick grid from a level layout.
func (w *World) Populate(lvl *level.Level) {
	w.Bricks = make(map[int]*Brick)
	for row := 0; row < lvl.Rows && row < w.Rows; row++ {
		for col := 0; col < lvl.Cols && col < w.Cols; col++ {
			code := lvl.Code(row, col)
			if code == level.CodeEmpty {
				continue
			}
			w.SpawnBrick(row, col, brickTypeForCode(code))
		}
	}
}

func brickTypeForCode(code int) BrickType {
	switch code {
	case level.CodeDurable:
		return BrickDurable
	case level.CodeMimic:
		return BrickMimic
	case level.CodeHealer:
		return BrickHealer
	case level.CodeSpore:
		return BrickSpore
	case level.CodePortal:
		return BrickPortal
	case level.CodeTurret:
		return BrickTurret
	default:
		return BrickStandard
	}
}

// SpawnBrick places a brick of the given type at a grid cell, replacing
// nothing: occupied cells are left alone and nil is returned.
func (w *World) SpawnBrick(row, col int, t BrickType) *Brick {
	key := w.GridKey(row, col)
	if key < 0 {
		return nil
	}
	if b, ok := w.Bricks[key]; ok && b.Alive {
		return nil
	}
	hp, value := brickStats(t)
	b := &Brick{
		Row:       row,
		Col:       col,
		Rect:      w.CellRect(row, col),
		Type:      t,
		Health:    hp,
		MaxHealth: hp,
		Value:     value,
		Alive:     true,
	}
	w.Bricks[key] = b
	return b
}

func brickStats(t BrickType) (hp, value int) {
	switch t {
	case BrickDurable:
		return 3, 30
	case BrickMimic:
		return 1, 40
	case BrickHealer:
		return 2, 50
	case BrickSpore:
		return 2, 50
	case BrickPortal:
		return 1, 20
	case BrickTurret:
		return 3, 60
	default:
		return 1, 10
	}
}

// MoveBrick relocates a brick to an empty grid cell. Returns false when the
// destination is occupied or out of grid.
func (w *World) MoveBrick(b *Brick, row, col int) bool {
	dst := w.GridKey(row, col)
	if dst < 0 {
		return false
	}
	if other, ok := w.Bricks[dst]; ok && other.Alive {
		return false
	}
	delete(w.Bricks, w.GridKey(b.Row, b.Col))
	b.Row, b.Col = row, col
	b.Rect = w.CellRect(row, col)
	w.Bricks[dst] = b
	return true
}

// BrickAt returns the live brick at a grid cell, or nil.
func (w *World) BrickAt(row, col int) *Brick {
	key := w.GridKey(row, col)
	if key < 0 {
		return nil
	}
	if b, ok := w.Bricks[key]; ok && b.Alive {
		return b
	}
	return nil
}

// AliveBricks returns live bricks in deterministic grid order. Map iteration
// order would leak into RNG consumption, so every per-tick scan sorts first.
func (w *World) AliveBricks() []*Brick {
	keys := make([]int, 0, len(w.Bricks))
	for k, b := range w.Bricks {
		if b.Alive {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	out := make([]*Brick, len(keys))
	for i, k := range keys {
		out[i] = w.Bricks[k]
	}
	return out
}

// AliveCount counts live bricks.
func (w *World) AliveCount() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// RemoveDead sweeps destroyed bricks out of the grid. Runs at end of tick so
// same-tick behaviors still see a consistent grid.
func (w *World) RemoveDead() {
	for k, b := range w.Bricks {
		if !b.Alive {
			delete(w.Bricks, k)
		}
	}
}

// AddBall appends a ball, honoring the hard cap. Returns false when full.
func (w *World) AddBall(b *Ball) bool {
	if len(w.Balls) >= w.maxBalls {
		return false
	}
	w.Balls = append(w.Balls, b)
	return true
}

// MaxBalls returns the ball cap.
func (w *World) MaxBalls() int { return w.maxBalls }

// ActiveBalls counts balls in flight.
func (w *World) ActiveBalls() int {
	n := 0
	for _, b := range w.Balls {
		if b.Active {
			n++
		}
	}
	return n
}

// ResetPaddle centers the paddle with the given width.
func (w *World) ResetPaddle(cfg *config.PaddleConfig, width float64) {
	w.Paddle = Paddle{
		X:      WorldW / 2,
		Y:      paddleYPos,
		Width:  width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// ClampPaddle keeps the paddle fully inside the field.
func (w *World) ClampPaddle() {
	half := w.Paddle.Width / 2
	w.Paddle.X = core.ClampF(w.Paddle.X, half, WorldW-half)
}

// EmptyAdjacent returns in-grid empty neighbor cells (4-neighborhood) of a
// grid cell, in deterministic order: up, down, left, right.
func (w *World) EmptyAdjacent(row, col int) [][2]int {
	var out [][2]int
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if w.GridKey(r, c) < 0 {
			continue
		}
		if w.BrickAt(r, c) == nil {
			out = append(out, [2]int{r, c})
		}
	}
	return out
}

// AdjacentBricks returns live neighbor bricks in the same order as
// EmptyAdjacent.
func (w *World) AdjacentBricks(row, col int) []*Brick {
	var out []*Brick
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if b := w.BrickAt(row+d[0], col+d[1]); b != nil {
			out = append(out, b)
		}
	}
	return out
}
