package state

import (
	"fmt"
	"testing"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/player"
)

func makeGame(t *testing.T) *Game {
	t.Helper()
	grid := world.NewBorderedGrid(10, 10)
	p := player.New(camera.New(3.5, 4.5, -1, 0, 60), grid, player.DefaultSpeeds())
	return NewGame(grid, p, raycast.New(grid, 1))
}

func TestNewGame_DiscoversSpawnCell(t *testing.T) {
	g := makeGame(t)
	if !g.IsDiscovered(3, 4) {
		t.Error("spawn cell (3,4) not discovered")
	}
	if g.DiscoveredCount() != 1 {
		t.Errorf("DiscoveredCount() = %d, want 1", g.DiscoveredCount())
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := makeGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("msg %d", i))
	}
	texts := g.MessageTexts()
	if len(texts) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(texts), maxMessages)
	}
	if texts[0] != "msg 3" || texts[4] != "msg 7" {
		t.Errorf("messages = %v, want msg 3..msg 7", texts)
	}

	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("after ClearMessages len = %d, want 0", len(g.Messages))
	}
}

func TestDiscover(t *testing.T) {
	g := makeGame(t)
	c := world.Coord{Row: 0, Col: 3}
	if !g.Discover(c) {
		t.Error("first Discover() = false, want true")
	}
	if g.Discover(c) {
		t.Error("second Discover() = true, want false")
	}
	if !g.IsDiscovered(0, 3) {
		t.Error("IsDiscovered(0,3) = false after Discover")
	}
}
