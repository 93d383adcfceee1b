package flappy

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

func newTestGame(cfg config.FlappyConfig, seed int64) *Game {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}

func zeroGravity() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	return cfg
}

func TestInitialState(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	snap := g.Snapshot()

	if snap.BirdY != 250 || snap.Velocity != 0 {
		t.Errorf("bird y=%v v=%v, want 250 and 0", snap.BirdY, snap.Velocity)
	}
	want := []Pipe{{X: 400, Height: 200}, {X: 600, Height: 150}}
	if !reflect.DeepEqual(snap.Pipes, want) {
		t.Errorf("pipes = %v, want %v", snap.Pipes, want)
	}
	if g.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval = %v, want one 60Hz frame", g.TickInterval())
	}
}

func TestZeroGravityHoldsPosition(t *testing.T) {
	g := newTestGame(zeroGravity(), 1)

	for n := 1; n <= 50; n++ {
		res := step(g)
		if res.State.Over() {
			t.Fatalf("game ended at tick %d", n)
		}
		if g.birdY != 250 {
			t.Fatalf("tick %d: y = %v, want 250", n, g.birdY)
		}
	}
}

func TestEulerIntegrationIsExact(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)

	if !g.Jump() {
		t.Fatal("jump should apply to an active game")
	}
	const n = 10
	for range n {
		step(g)
	}

	// v = jump + n*g, y = start + sum over k of (jump + k*g)
	if g.velocity != -8+n*0.5 {
		t.Errorf("velocity = %v, want %v", g.velocity, -8+n*0.5)
	}
	if g.birdY != 197.5 {
		t.Errorf("y = %v, want 197.5", g.birdY)
	}
}

func TestJumpInFrameAppliesBeforeGravity(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	step(g, core.ActionJump)

	if g.velocity != -7.5 || g.birdY != 242.5 {
		t.Errorf("after jump frame v=%v y=%v, want -7.5 and 242.5", g.velocity, g.birdY)
	}
}

func TestFallingOutOfFieldEndsGame(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)

	for n := 1; n <= 31; n++ {
		if step(g).State.Over() {
			t.Fatalf("game ended early at tick %d, y=%v", n, g.birdY)
		}
	}
	if !step(g).State.Over() {
		t.Errorf("tick 32 should leave the field, y=%v", g.birdY)
	}
}

func TestAboveTopEndsGame(t *testing.T) {
	g := newTestGame(zeroGravity(), 1)
	g.birdY = 2
	g.velocity = -3

	if !step(g).State.Over() {
		t.Error("y < 0 should end the game")
	}
}

func TestPipeCollision(t *testing.T) {
	tests := []struct {
		name  string
		pipeX float64 // before this frame's scroll
		birdY float64
		over  bool
	}{
		{"above gap while overlapping", 60, 150, true},
		{"below gap while overlapping", 60, 360, true},
		{"inside gap", 60, 250, false},
		{"on gap top edge", 60, 200, false},
		{"on gap bottom edge", 60, 350, false},
		{"pipe trailing edge touches band", -6, 100, false},
		{"pipe leading edge touches band", 104, 100, false},
		{"pipe just inside band", 103, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(zeroGravity(), 1)
			g.pipes.pipes = []Pipe{{X: tt.pipeX, Height: 200}, {X: 400, Height: 150}}
			g.birdY = tt.birdY

			if got := step(g).State.Over(); got != tt.over {
				t.Errorf("over = %v, want %v", got, tt.over)
			}
		})
	}
}

func TestPipeRecycleScoresAndKeepsLength(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pq := NewPipeQueue(rand.New(rand.NewSource(5)), cfg.Pipes, cfg.Field.Width)

	for n := 1; n <= 115; n++ {
		if pq.Scroll(4) != 0 {
			t.Fatalf("recycled early at frame %d", n)
		}
	}
	if pq.Scroll(4) != 1 {
		t.Fatal("frame 116 should recycle the leading pipe")
	}

	pipes := pq.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("queue length = %d, want 2", len(pipes))
	}
	if pipes[0].X != 136 || pipes[0].Height != 150 {
		t.Errorf("leading pipe = %+v, want the former second pipe at x=136", pipes[0])
	}
	if pipes[1].X != 400 {
		t.Errorf("recycled pipe x = %v, want 400", pipes[1].X)
	}
	h := pipes[1].Height
	if h < 100 || h >= 300 || h != float64(int(h)) {
		t.Errorf("recycled height = %v, want integer in [100,300)", h)
	}
}

func TestOverIgnoresJumpAndRestartRecovers(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	for !step(g).State.Over() {
	}

	v := g.velocity
	if g.Jump() || step(g, core.ActionJump).Changed || g.velocity != v {
		t.Error("jump must be ignored once the game is over")
	}

	res := step(g, core.ActionRestart)
	if res.State.Over() || res.State.Score != 0 || !res.Changed {
		t.Errorf("restart result = %+v", res)
	}
	snap := g.Snapshot()
	if snap.BirdY != 250 || snap.Velocity != 0 || snap.Pipes[0] != (Pipe{X: 400, Height: 200}) {
		t.Errorf("restart snapshot = %+v", snap)
	}
}

func TestPauseFreezesFrame(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	if res := step(g, core.ActionPause); !res.Changed || !res.State.Paused {
		t.Errorf("pausing should report a change, got %+v", res)
	}
	y := g.birdY
	step(g)
	step(g, core.ActionJump)

	if g.birdY != y || g.velocity != 0 {
		t.Error("paused game must not move or accept jumps")
	}
	if !g.State().Paused {
		t.Error("State should report paused")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(config.DefaultFlappyConfig(), 12345)
		for i := range 400 {
			var res core.StepResult
			if i%15 == 0 {
				res = step(g, core.ActionJump)
			} else {
				res = step(g)
			}
			if res.State.Over() {
				break
			}
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Error("bird should be drawn")
	}

	g.status = core.StatusOver
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}
}
