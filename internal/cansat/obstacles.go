package cansat

import (
	"math/rand"

	"github.com/vovakirdan/cansat-drop/internal/config"
)

// Obstacle is one member of the fixed obstacle pool.
// Its size lives in the Scene; only identity, kind and position are kept here.
type Obstacle struct {
	ID   EntityID
	Kind Kind
	X, Y float64
}

// Spawner creates the obstacle pool and recycles obstacles that leave the
// play area through the top. It never adds or removes pool members after
// SpawnInitial.
type Spawner struct {
	scene Scene
	cfg   config.ObstaclesConfig
	rng   *rand.Rand
}

// NewSpawner creates a spawner placing obstacles into scene.
func NewSpawner(scene Scene, cfg config.ObstaclesConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		scene: scene,
		cfg:   cfg,
		rng:   rng,
	}
}

// SpawnInitial creates n obstacles below the visible area.
// Each gets a uniformly random kind, a random x that keeps it inside the
// play area and y = height + rand[0, spawn_depth).
func (s *Spawner) SpawnInitial(n int) []Obstacle {
	if n <= 0 {
		return nil
	}
	_, h := s.scene.PlayAreaSize()

	pool := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		o := Obstacle{
			ID:   ObstacleID(i),
			Kind: ObstacleKinds[s.rng.Intn(len(ObstacleKinds))],
		}
		s.scene.Spawn(o.ID, o.Kind)
		o.X = s.randomX(o.ID)
		o.Y = h
		if s.cfg.SpawnDepth > 0 {
			o.Y += s.rng.Float64() * s.cfg.SpawnDepth
		}
		s.scene.Place(o.ID, o.X, o.Y)
		pool = append(pool, o)
	}
	return pool
}

// NeedsRecycle reports whether o has left the play area through the top.
func (s *Spawner) NeedsRecycle(o Obstacle) bool {
	return o.Y < s.cfg.ExitThreshold
}

// Recycle moves o back below the play area with a fresh x.
// The kind is kept.
func (s *Spawner) Recycle(o *Obstacle) {
	_, h := s.scene.PlayAreaSize()
	o.Y = h + s.cfg.RecycleOffset
	o.X = s.randomX(o.ID)
	s.scene.Place(o.ID, o.X, o.Y)
}

// Advance raises every obstacle by speed and recycles those that exit.
func (s *Spawner) Advance(pool []Obstacle, speed float64) {
	for i := range pool {
		o := &pool[i]
		o.Y -= speed
		if s.NeedsRecycle(*o) {
			s.Recycle(o)
			continue
		}
		s.scene.Place(o.ID, o.X, o.Y)
	}
}

// randomX picks x uniformly in [0, width - obstacle width].
func (s *Spawner) randomX(id EntityID) float64 {
	w, _ := s.scene.PlayAreaSize()
	span := w - s.scene.BoundsOf(id).W
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}
