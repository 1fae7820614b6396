package game

import "github.com/plus3/creeps/ecs"

// PresentationSink receives animation cues. The core only emits; it never reads back.
type PresentationSink interface {
	PlayerMotion(event MotionEvent)
	MobVariant(id ecs.EntityId, variant Variant)
}

// NopSink discards every cue.
type NopSink struct{}

func (NopSink) PlayerMotion(MotionEvent) {}

func (NopSink) MobVariant(ecs.EntityId, Variant) {}
