package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/ecs/debugui"
	"github.com/plus3/creeps/game"
	"github.com/plus3/creeps/session"
)

func addDebugWindows(system *debugui.ImguiSystem, s *session.Session) {
	timer := debugui.NewFrameTimer()
	perf := debugui.NewPerformanceStats(120)
	mobs := debugui.NewTableBrowser("Mobs", s.Game.Mobs, 50,
		[]string{"Variant", "Position", "Speed"},
		func(_ ecs.EntityId, mob *game.Mob) []string {
			return []string{
				mob.Variant.String(),
				fmt.Sprintf("%.0f, %.0f", mob.Position.X, mob.Position.Y),
				fmt.Sprintf("%.0f", mob.LinearVelocity.Length()),
			}
		})

	system.Add("game", func() { renderGameWindow(s) })
	system.Add("performance", func() { perf.Render(s.Scheduler, timer.GetDeltaTime()) })
	system.Add("mobs", mobs.Render)
}

func renderGameWindow(s *session.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := s.Game.Coordinator.State()
	hud := s.Game.Hud.State()
	player := s.Game.Player

	imgui.Text(fmt.Sprintf("Phase: %s", state.Phase))
	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Games: %d", state.Games))
	imgui.Text(fmt.Sprintf("Session: %s", state.Session))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Player: %.0f, %.0f", player.Position.X, player.Position.Y))
	imgui.Text(fmt.Sprintf("Monitoring: %t", player.MonitoringEnabled))
	imgui.Text(fmt.Sprintf("Mobs: %d (spawned %d, skipped %d)",
		s.Game.Mobs.Len(), s.Game.Spawner.Spawned(), s.Game.Spawner.Skipped()))
	imgui.Text(fmt.Sprintf("Message: %q", hud.Message))
	imgui.Separator()

	if imgui.Button("New Game") {
		s.Game.Coordinator.NewGame()
	}
	imgui.SameLine()
	if imgui.Button("Game Over") {
		s.Game.Coordinator.GameOver()
	}
	imgui.SameLine()
	if imgui.Button("Start") {
		s.PressStart()
	}

	imgui.End()
}
