package cansat

import (
	"fmt"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/core"
)

// EntityID identifies an entity in the Scene.
type EntityID string

// PlayerID is the id of the cansat entity.
const PlayerID EntityID = "player"

// ObstacleID returns the id of the i-th obstacle in the pool.
func ObstacleID(i int) EntityID {
	return EntityID(fmt.Sprintf("obstacle-%d", i))
}

// Kind is the visual type of an entity.
type Kind int

const (
	KindCansat Kind = iota
	KindCloud
	KindBird
	KindUFO
)

// ObstacleKinds are the kinds an obstacle can be spawned as.
var ObstacleKinds = []Kind{KindCloud, KindBird, KindUFO}

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCansat:
		return "cansat"
	case KindCloud:
		return "cloud"
	case KindBird:
		return "bird"
	case KindUFO:
		return "ufo"
	default:
		return "unknown"
	}
}

// Scene is the rendering collaborator.
// The simulation pushes positions into it and reads entity bounds back for
// collision tests; how entities are drawn is up to the implementation.
type Scene interface {
	// PlayAreaSize returns the width and height of the play area.
	PlayAreaSize() (w, h float64)
	// Spawn creates an entity of the given kind at the origin.
	Spawn(id EntityID, kind Kind)
	// Place moves an existing entity. Unknown ids are ignored.
	Place(id EntityID, x, y float64)
	// Remove deletes an entity. Unknown ids are ignored.
	Remove(id EntityID)
	// BoundsOf returns the bounding box of an entity, or the zero Rect.
	BoundsOf(id EntityID) core.Rect
	// Clear removes every entity.
	Clear()
}

// Entity is one placed entity of a Layout.
type Entity struct {
	ID   EntityID
	Kind Kind
	Rect core.Rect
}

// Layout is a headless Scene: entity sizes come from the configuration and
// positions are whatever the simulation placed last.
// Front-ends render from it; tests use it as a double.
type Layout struct {
	width, height float64
	sizes         map[Kind]config.Size
	entities      map[EntityID]*Entity
	order         []EntityID // Spawn order, for stable drawing
}

var _ Scene = (*Layout)(nil)

// NewLayout creates a Layout sized by cfg.
func NewLayout(cfg config.Config) *Layout {
	sizes := map[Kind]config.Size{
		KindCansat: cfg.Player,
	}
	for _, k := range ObstacleKinds {
		if s, ok := cfg.ObstacleSize(k.String()); ok {
			sizes[k] = s
		}
	}
	return &Layout{
		width:    cfg.PlayArea.Width,
		height:   cfg.PlayArea.Height,
		sizes:    sizes,
		entities: make(map[EntityID]*Entity),
	}
}

// PlayAreaSize returns the play area dimensions.
func (l *Layout) PlayAreaSize() (float64, float64) {
	return l.width, l.height
}

// Spawn creates or replaces an entity.
func (l *Layout) Spawn(id EntityID, kind Kind) {
	size := l.sizes[kind]
	if _, exists := l.entities[id]; !exists {
		l.order = append(l.order, id)
	}
	l.entities[id] = &Entity{
		ID:   id,
		Kind: kind,
		Rect: core.NewRect(0, 0, size.Width, size.Height),
	}
}

// Place moves an entity's top-left corner to (x, y).
func (l *Layout) Place(id EntityID, x, y float64) {
	if e, ok := l.entities[id]; ok {
		e.Rect.X = x
		e.Rect.Y = y
	}
}

// Remove deletes an entity.
func (l *Layout) Remove(id EntityID) {
	if _, ok := l.entities[id]; !ok {
		return
	}
	delete(l.entities, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// BoundsOf returns an entity's bounding box.
func (l *Layout) BoundsOf(id EntityID) core.Rect {
	if e, ok := l.entities[id]; ok {
		return e.Rect
	}
	return core.Rect{}
}

// Clear removes every entity.
func (l *Layout) Clear() {
	l.entities = make(map[EntityID]*Entity)
	l.order = l.order[:0]
}

// Entities returns copies of all entities in spawn order.
func (l *Layout) Entities() []Entity {
	result := make([]Entity, 0, len(l.order))
	for _, id := range l.order {
		result = append(result, *l.entities[id])
	}
	return result
}

// Len returns the number of entities.
func (l *Layout) Len() int {
	return len(l.entities)
}
