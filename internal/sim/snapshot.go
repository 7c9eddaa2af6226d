package sim

import (
	"hash/fnv"
	"math"
)

// Snapshot is a flattened view of the full simulation state. Two games
// stepped identically from the same seed must produce identical snapshots;
// the Hash makes that cheap to assert.
type Snapshot struct {
	Tick     int
	Clock    float64
	Score    int
	Lives    int
	Streak   int
	Level    int
	Cycle    int
	Over     bool
	Won      bool
	RNGState uint64

	PityState  int
	PityTarget int
	PityHits   int
	PityClaim  bool
	PityWait   bool

	PaddleX     float64
	PaddleWidth float64

	// Entities flattened as fixed-point thousandths so the hash is exact.
	Balls       []int64 // x, y, dx, dy per ball
	Bricks      []int64 // gridKey, type, health per live brick
	PowerUps    []int64 // x, y, type per pickup
	Projectiles []int64 // x, y, dx, dy, owner per shot
	Effects     []int64 // end time per effect kind
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Clock:      g.clock.Now(),
		Score:      g.score,
		Lives:      g.lives,
		Streak:     g.streak,
		Level:      g.levelIdx,
		Cycle:      g.cycle,
		Over:       g.over,
		Won:        g.won,
		PityState:  int(g.pity),
		PityTarget: g.pityTarget,
		PityHits:   g.pityHits,
		PityClaim:  g.pityClaim,
		PityWait:   g.pityWait,
	}
	if g.rng != nil {
		s.RNGState = g.rng.State()
	}
	if g.world == nil {
		return s
	}
	s.PaddleX = g.world.Paddle.X
	s.PaddleWidth = g.world.Paddle.Width

	for _, b := range g.world.Balls {
		active := int64(0)
		if b.Active {
			active = 1
		}
		s.Balls = append(s.Balls, milli(b.X), milli(b.Y), milli(b.DX), milli(b.DY), active)
	}
	for _, br := range g.world.AliveBricks() {
		s.Bricks = append(s.Bricks,
			int64(g.world.GridKey(br.Row, br.Col)), int64(br.Type), int64(br.Health))
	}
	for _, pw := range g.world.PowerUps {
		s.PowerUps = append(s.PowerUps, milli(pw.X), milli(pw.Y), int64(pw.Type))
	}
	for _, pr := range g.world.Projectiles {
		s.Projectiles = append(s.Projectiles,
			milli(pr.X), milli(pr.Y), milli(pr.DX), milli(pr.DY), int64(pr.Owner))
	}
	for _, t := range g.effects.EndTimes() {
		s.Effects = append(s.Effects, milli(t))
	}
	return s
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	w := func(vs ...int64) {
		var buf [8]byte
		for _, v := range vs {
			u := uint64(v)
			for i := 0; i < 8; i++ {
				buf[i] = byte(u >> (8 * i))
			}
			h.Write(buf[:])
		}
	}
	b2i := func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	}
	w(int64(s.Tick), milli(s.Clock), int64(s.Score), int64(s.Lives), int64(s.Streak),
		int64(s.Level), int64(s.Cycle), b2i(s.Over), b2i(s.Won), int64(s.RNGState),
		int64(s.PityState), int64(s.PityTarget), int64(s.PityHits),
		b2i(s.PityClaim), b2i(s.PityWait),
		milli(s.PaddleX), milli(s.PaddleWidth))
	w(s.Balls...)
	w(s.Bricks...)
	w(s.PowerUps...)
	w(s.Projectiles...)
	w(s.Effects...)
	return h.Sum64()
}
