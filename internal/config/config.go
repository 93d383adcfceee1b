// Package config provides YAML-based game configuration loading
// for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Coord is a board cell or unit vector in YAML form.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Timing SnakeTiming `yaml:"timing"`
	Start  SnakeStart  `yaml:"start"`
	Food   SnakeFood   `yaml:"food"`
}

// SnakeBoard defines the play grid.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines the tick period.
type SnakeTiming struct {
	TickMs int `yaml:"tick_ms"`
}

// SnakeStart defines the state a new or restarted game begins from.
type SnakeStart struct {
	Head    Coord `yaml:"head"`
	Heading Coord `yaml:"heading"`
	Food    Coord `yaml:"food"`
}

// SnakeFood defines scoring and respawn behaviour.
type SnakeFood struct {
	Points    int  `yaml:"points"`
	AvoidBody bool `yaml:"avoid_body"`
}

// Validate checks that the start state fits on the board.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: snake board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Timing.TickMs <= 0 {
		return fmt.Errorf("%w: snake tick_ms %d", ErrInvalid, c.Timing.TickMs)
	}
	in := func(p Coord) bool {
		return p.X >= 0 && p.X < c.Board.Width && p.Y >= 0 && p.Y < c.Board.Height
	}
	if !in(c.Start.Head) || !in(c.Start.Food) {
		return fmt.Errorf("%w: snake start head/food outside board", ErrInvalid)
	}
	h := c.Start.Heading
	if abs(h.X)+abs(h.Y) != 1 {
		return fmt.Errorf("%w: snake heading (%d,%d) is not a unit vector", ErrInvalid, h.X, h.Y)
	}
	return nil
}

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Spawn   T2048Spawn   `yaml:"spawn"`
	Scoring T2048Scoring `yaml:"scoring"`
}

// T2048Spawn defines new-tile odds.
type T2048Spawn struct {
	FourProbability float64 `yaml:"four_probability"`
}

// T2048Scoring defines the flat per-move increment.
type T2048Scoring struct {
	MovePoints int `yaml:"move_points"`
}

// Validate checks probability bounds.
func (c T2048Config) Validate() error {
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: 2048 four_probability %v", ErrInvalid, c.Spawn.FourProbability)
	}
	return nil
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Field   FlappyField   `yaml:"field"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
}

// FlappyPhysics defines per-frame physics parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// FlappyField defines the play area in world units.
type FlappyField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyBird defines the bird's fixed horizontal band and start height.
type FlappyBird struct {
	BandLeft  float64 `yaml:"band_left"`
	BandRight float64 `yaml:"band_right"`
	StartY    float64 `yaml:"start_y"`
}

// FlappyPipes defines pipe geometry and the recycled gap-height range.
type FlappyPipes struct {
	Width     float64    `yaml:"width"`
	Gap       float64    `yaml:"gap"`
	MinHeight int        `yaml:"min_height"`
	MaxHeight int        `yaml:"max_height"` // exclusive
	Initial   []PipeSpec `yaml:"initial"`
}

// PipeSpec is one pipe of the initial sequence.
type PipeSpec struct {
	X      float64 `yaml:"x"`
	Height float64 `yaml:"height"`
}

// Validate checks the field and pipe ranges.
func (c FlappyConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: flappy field %vx%v", ErrInvalid, c.Field.Width, c.Field.Height)
	}
	if c.Bird.BandRight <= c.Bird.BandLeft {
		return fmt.Errorf("%w: flappy bird band [%v, %v]", ErrInvalid, c.Bird.BandLeft, c.Bird.BandRight)
	}
	if c.Pipes.MaxHeight <= c.Pipes.MinHeight {
		return fmt.Errorf("%w: flappy pipe height range [%d, %d)", ErrInvalid, c.Pipes.MinHeight, c.Pipes.MaxHeight)
	}
	if len(c.Pipes.Initial) == 0 {
		return fmt.Errorf("%w: flappy needs at least one initial pipe", ErrInvalid)
	}
	return nil
}

// ContactConfig holds the email relay endpoint and its three secrets.
type ContactConfig struct {
	Endpoint   string `yaml:"endpoint"`
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
