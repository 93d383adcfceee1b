package registry_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
	_ "github.com/vovakirdan/folio-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/folio-arcade/internal/games/snake"
	_ "github.com/vovakirdan/folio-arcade/internal/games/t2048"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

func TestBuiltinGamesRegistered(t *testing.T) {
	want := map[string]string{
		"2048":   "2048",
		"flappy": "Flappy Bird",
		"snake":  "Snake",
	}

	list := registry.List()
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %d games", list, len(want))
	}
	for i, info := range list {
		if want[info.ID] != info.Title {
			t.Errorf("game %q title = %q, want %q", info.ID, info.Title, want[info.ID])
		}
		if i > 0 && list[i-1].ID >= info.ID {
			t.Error("List() should be sorted by ID")
		}
	}
}

func TestCreate(t *testing.T) {
	g, err := registry.Create("2048")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.TickInterval() != 0 {
		t.Error("2048 should be input-driven")
	}

	g, err = registry.Create("snake")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.TickInterval() <= 0 {
		t.Error("snake should have a tick source")
	}

	if _, err := registry.Create("pong"); err == nil {
		t.Error("unknown game should fail")
	}
	if registry.Exists("pong") || !registry.Exists("flappy") {
		t.Error("Exists reports wrong membership")
	}
}

type stubGame struct{}

func (stubGame) ID() string { return "dup" }
func (stubGame) Title() string { return "Dup" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) TickInterval() time.Duration { return 0 }
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }
func (stubGame) Observe() any { return nil }

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering an existing ID should panic")
		}
	}()
	registry.Register("snake", func() registry.Game { return stubGame{} })
}
