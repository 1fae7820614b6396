package physics

import (
	"log/slog"
	"math"

	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/game"
	"github.com/solarlune/resolv"
)

const (
	cellSize  = 32
	tagPlayer = "player"
	tagMob    = "mob"
)

// ContactSystem mirrors the player and the mobs into a resolv space. The
// space answers the broadphase; overlaps are confirmed with a circle test.
type ContactSystem struct {
	player     *game.Player
	mobs       *ecs.Table[game.Mob]
	hits       HitNotifier
	visibility VisibilityNotifier
	viewport   game.Vector2
	log        *slog.Logger

	space     *resolv.Space
	playerObj *resolv.Object
	objects   map[ecs.EntityId]*resolv.Object
	owners    map[*resolv.Object]ecs.EntityId
	// seen holds mobs that have been inside the viewport at least once
	seen map[ecs.EntityId]bool
}

func NewContactSystem(player *game.Player, mobs *ecs.Table[game.Mob], viewport game.Vector2, hits HitNotifier, visibility VisibilityNotifier, log *slog.Logger) *ContactSystem {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &ContactSystem{
		player:     player,
		mobs:       mobs,
		hits:       hits,
		visibility: visibility,
		viewport:   viewport,
		log:        log,
		space:      resolv.NewSpace(int(math.Ceil(viewport.X)), int(math.Ceil(viewport.Y)), cellSize, cellSize),
		objects:    make(map[ecs.EntityId]*resolv.Object),
		owners:     make(map[*resolv.Object]ecs.EntityId),
		seen:       make(map[ecs.EntityId]bool),
	}

	d := player.Radius * 2
	s.playerObj = resolv.NewObject(player.Position.X-player.Radius, player.Position.Y-player.Radius, d, d, tagPlayer)
	s.space.Add(s.playerObj)
	return s
}

func (s *ContactSystem) Execute(frame *ecs.UpdateFrame) {
	s.sync()

	if s.player.MonitoringEnabled {
		s.checkContacts()
	}
	s.checkVisibility()
}

// Tracked returns the number of mob bodies in the space.
func (s *ContactSystem) Tracked() int {
	return len(s.objects)
}

func (s *ContactSystem) sync() {
	for id, mob := range s.mobs.Iter() {
		obj, ok := s.objects[id]
		if !ok {
			d := mob.Radius * 2
			obj = resolv.NewObject(mob.Position.X-mob.Radius, mob.Position.Y-mob.Radius, d, d, tagMob)
			s.space.Add(obj)
			s.objects[id] = obj
			s.owners[obj] = id
			continue
		}
		obj.Position.X = mob.Position.X - mob.Radius
		obj.Position.Y = mob.Position.Y - mob.Radius
		obj.Update()
	}

	for id, obj := range s.objects {
		if s.mobs.Has(id) {
			continue
		}
		s.space.Remove(obj)
		delete(s.objects, id)
		delete(s.owners, obj)
		delete(s.seen, id)
	}

	s.playerObj.Position.X = s.player.Position.X - s.player.Radius
	s.playerObj.Position.Y = s.player.Position.Y - s.player.Radius
	s.playerObj.Update()
}

func (s *ContactSystem) checkContacts() {
	collision := s.playerObj.Check(0, 0, tagMob)
	if collision == nil {
		return
	}

	for _, obj := range collision.Objects {
		mob := s.mobs.Get(s.owners[obj])
		if mob == nil {
			continue
		}
		reach := s.player.Radius + mob.Radius
		if mob.Position.Sub(s.player.Position).Length() < reach {
			s.log.Debug("contact", "mob", uint64(s.owners[obj]))
			s.hits.PlayerAreaEntered()
			return
		}
	}
}

func (s *ContactSystem) checkVisibility() {
	for id, mob := range s.mobs.Iter() {
		r := mob.Radius
		inside := mob.Position.X >= -r && mob.Position.X <= s.viewport.X+r &&
			mob.Position.Y >= -r && mob.Position.Y <= s.viewport.Y+r

		switch {
		case inside:
			s.seen[id] = true
		case s.seen[id]:
			delete(s.seen, id)
			s.visibility.LeftVisibleArea(id)
		}
	}
}
