package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/game"
	"github.com/plus3/creeps/session"
)

var (
	backgroundColor = color.RGBA{62, 110, 115, 255}
	playerColor     = color.RGBA{240, 240, 230, 255}
	facingColor     = color.RGBA{30, 30, 30, 255}
	variantColors   = map[game.Variant]color.RGBA{
		game.VariantWalk: {230, 120, 90, 255},
		game.VariantSwim: {90, 150, 230, 255},
		game.VariantFly:  {200, 110, 210, 255},
	}
)

// drawSink is the presentation sink: it keeps the latest animation cues and
// draws placeholder shapes for the snapshot.
type drawSink struct {
	motion   game.MotionEvent
	variants map[ecs.EntityId]game.Variant
}

func newDrawSink() *drawSink {
	return &drawSink{variants: make(map[ecs.EntityId]game.Variant)}
}

func (d *drawSink) PlayerMotion(event game.MotionEvent) {
	d.motion = event
}

func (d *drawSink) MobVariant(id ecs.EntityId, variant game.Variant) {
	d.variants[id] = variant
}

func (d *drawSink) Draw(screen *ebiten.Image, snap session.Snapshot) {
	screen.Fill(backgroundColor)

	live := make(map[ecs.EntityId]bool, len(snap.Mobs))
	for _, mob := range snap.Mobs {
		live[mob.Id] = true
		d.drawMob(screen, mob)
	}
	for id := range d.variants {
		if !live[id] {
			delete(d.variants, id)
		}
	}

	if snap.Player.Visible {
		d.drawPlayer(screen, snap.Player)
	}
	d.drawHud(screen, snap)
}

func (d *drawSink) drawMob(screen *ebiten.Image, mob session.MobView) {
	x, y := float32(mob.Position.X), float32(mob.Position.Y)
	c, ok := variantColors[d.variants[mob.Id]]
	if !ok {
		c = variantColors[mob.Variant]
	}
	vector.DrawFilledCircle(screen, x, y, float32(mob.Radius), c, true)

	// mobs are drawn facing along their rotation minus the sprite offset
	heading := mob.Rotation - math.Pi/2
	hx := x + float32(math.Cos(heading)*mob.Radius)
	hy := y + float32(math.Sin(heading)*mob.Radius)
	vector.StrokeLine(screen, x, y, hx, hy, 2, facingColor, true)
}

func (d *drawSink) drawPlayer(screen *ebiten.Image, player game.Player) {
	x, y := float32(player.Position.X), float32(player.Position.Y)
	r := float32(player.Radius)
	vector.DrawFilledCircle(screen, x, y, r, playerColor, true)

	if !d.motion.IsMoving {
		return
	}
	dx, dy := float32(0), float32(-r)
	switch d.motion.Facing() {
	case game.FacingRight:
		dx, dy = r, 0
		if d.motion.FlipH() {
			dx = -r
		}
	case game.FacingUp:
		if d.motion.FlipV() {
			dy = r
		}
	}
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 3, facingColor, true)
}

func (d *drawSink) drawHud(screen *ebiten.Image, snap session.Snapshot) {
	w := screen.Bounds().Dx()

	ebitenutil.DebugPrintAt(screen, snap.Hud.ScoreText, w/2-4, 12)
	if snap.Hud.MessageVisible {
		ebitenutil.DebugPrintAt(screen, snap.Hud.Message, w/2-len(snap.Hud.Message)*3, 240)
	}
	if snap.Hud.StartVisible {
		ebitenutil.DebugPrintAt(screen, "[Enter] Start", w/2-39, 580)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  mobs:%d", snap.State.Phase, len(snap.Mobs)), 4, screen.Bounds().Dy()-18)
}
