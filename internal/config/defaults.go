package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/contact.yaml
var defaultContactYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board:  SnakeBoard{Width: 20, Height: 20},
		Timing: SnakeTiming{TickMs: 150},
		Start: SnakeStart{
			Head:    Coord{X: 5, Y: 5},
			Heading: Coord{X: 1, Y: 0},
			Food:    Coord{X: 10, Y: 10},
		},
		Food: SnakeFood{
			Points:    10,
			AvoidBody: true,
		},
	}
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn:   T2048Spawn{FourProbability: 0.1},
		Scoring: T2048Scoring{MovePoints: 10},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -8,
			ScrollSpeed: 4,
		},
		Field: FlappyField{Width: 400, Height: 500},
		Bird: FlappyBird{
			BandLeft:  50,
			BandRight: 100,
			StartY:    250,
		},
		Pipes: FlappyPipes{
			Width:     60,
			Gap:       150,
			MinHeight: 100,
			MaxHeight: 300,
			Initial: []PipeSpec{
				{X: 400, Height: 200},
				{X: 600, Height: 150},
			},
		},
	}
}

// DefaultContactConfig returns the relay endpoint with empty secrets.
func DefaultContactConfig() ContactConfig {
	return ContactConfig{
		Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	case "t2048", "2048":
		return defaultT2048YAML
	case "flappy":
		return defaultFlappyYAML
	case "contact":
		return defaultContactYAML
	default:
		return nil
	}
}
