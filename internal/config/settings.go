package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/footprint-tools/stockline/internal/domain"
)

// Settings is the resolved session configuration: defaults, then
// ~/.stocklinerc, then STOCKLINE_* environment variables.
// Command-line flags are applied on top by main.
type Settings struct {
	Prompt          string
	EchoInput       bool
	StrictArguments bool
	Color           bool
	EnableLog       bool
	LogLevel        string
}

// settingsEnv holds the STOCKLINE_* overrides; nil means unset or empty.
type settingsEnv struct {
	Prompt          *string `env:"STOCKLINE_PROMPT"`
	EchoInput       *bool   `env:"STOCKLINE_ECHO_INPUT"`
	StrictArguments *bool   `env:"STOCKLINE_STRICT_ARGUMENTS"`
	Color           *bool   `env:"STOCKLINE_COLOR"`
	EnableLog       *bool   `env:"STOCKLINE_ENABLE_LOG"`
	LogLevel        *string `env:"STOCKLINE_LOG_LEVEL"`
}

// Load resolves Settings from the provider and the environment.
func Load(p domain.ConfigProvider) (Settings, error) {
	values, err := p.GetAll()
	if err != nil {
		return Settings{}, err
	}

	lookup := func(key string) string {
		if v, ok := values[key]; ok {
			return v
		}
		v, _ := domain.GetDefaultValue(key)
		return v
	}

	s := Settings{
		Prompt:   lookup("prompt"),
		LogLevel: lookup("log_level"),
	}
	bools := []struct {
		key    string
		target *bool
	}{
		{"echo_input", &s.EchoInput},
		{"strict_arguments", &s.StrictArguments},
		{"color", &s.Color},
		{"enable_log", &s.EnableLog},
	}
	for _, b := range bools {
		if *b.target, err = parseBool(b.key, lookup(b.key)); err != nil {
			return Settings{}, err
		}
	}

	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (s *Settings) applyEnv() error {
	var overrides settingsEnv
	if err := ParseEnv(&overrides); err != nil {
		return err
	}

	override(&s.Prompt, overrides.Prompt)
	override(&s.EchoInput, overrides.EchoInput)
	override(&s.StrictArguments, overrides.StrictArguments)
	override(&s.Color, overrides.Color)
	override(&s.EnableLog, overrides.EnableLog)
	override(&s.LogLevel, overrides.LogLevel)
	return nil
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func parseBool(key, value string) (bool, error) {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s: expected true or false, got %q", key, value)
	}
	return v, nil
}
