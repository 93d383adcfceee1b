package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the contact relay secrets.
const (
	EnvContactServiceID  = "EMAILJS_SERVICE_ID"
	EnvContactTemplateID = "EMAILJS_TEMPLATE_ID"
	EnvContactPublicKey  = "EMAILJS_PUBLIC_KEY"
)

// validator is implemented by configs that can reject bad values.
type validator interface {
	Validate() error
}

// load fills cfg, which must already hold the hard-coded defaults.
// Search order: customPath -> ~/.folio/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Keys missing from the chosen file keep their default values.
func load[T any](name, customPath string, cfg *T) error {
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validate(customPath, cfg)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		attempt := *cfg
		if err := yaml.Unmarshal(data, &attempt); err != nil {
			continue
		}
		if validate(path, &attempt) != nil {
			continue
		}
		*cfg = attempt
		return nil
	}

	// Use embedded default YAML; the hard-coded values remain if it is unreadable
	attempt := *cfg
	if err := yaml.Unmarshal(GetDefaultYAML(name), &attempt); err == nil && validate(name, &attempt) == nil {
		*cfg = attempt
	}
	return nil
}

func validate(source string, cfg any) error {
	v, ok := cfg.(validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	return nil
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := load("snake", customPath, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadT2048 loads 2048 configuration.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := load("t2048", customPath, &cfg); err != nil {
		return DefaultT2048Config(), err
	}
	return cfg, nil
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := load("flappy", customPath, &cfg); err != nil {
		return DefaultFlappyConfig(), err
	}
	return cfg, nil
}

// LoadContact loads the contact relay configuration.
// The three secrets are taken from the environment when set there.
func LoadContact(customPath string) (ContactConfig, error) {
	cfg := DefaultContactConfig()
	err := load("contact", customPath, &cfg)
	if v := os.Getenv(EnvContactServiceID); v != "" {
		cfg.ServiceID = v
	}
	if v := os.Getenv(EnvContactTemplateID); v != "" {
		cfg.TemplateID = v
	}
	if v := os.Getenv(EnvContactPublicKey); v != "" {
		cfg.PublicKey = v
	}
	return cfg, err
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", "configs", filename)
}
