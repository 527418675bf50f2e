package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vision provider identifiers accepted in providers.yaml.
const (
	VisionProviderOpenAI = "openai"
	VisionProviderGemini = "gemini"
)

// ProvidersConfig selects which models back each provider call.
type ProvidersConfig struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Generation    GenerationConfig    `yaml:"generation"`
	Vision        VisionConfig        `yaml:"vision"`
}

// TranscriptionConfig configures the speech-to-text call.
type TranscriptionConfig struct {
	Model string `yaml:"model"`
}

// GenerationConfig configures report synthesis and revision calls.
type GenerationConfig struct {
	Model string `yaml:"model"`
}

// VisionConfig configures the image captioning call.
type VisionConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// DefaultProvidersConfig returns the configuration used when no
// providers.yaml is present.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		Transcription: TranscriptionConfig{Model: "whisper-1"},
		Generation:    GenerationConfig{Model: "gpt-4o"},
		Vision:        VisionConfig{Provider: VisionProviderOpenAI, Model: "gpt-4o"},
	}
}

// LoadProvidersConfig reads providers.yaml from configPath. A missing file is
// not an error; defaults apply. Unset fields fall back to defaults as well.
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	cfg := DefaultProvidersConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read providers config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse providers config: %w", err)
	}

	defaults := DefaultProvidersConfig()
	if cfg.Transcription.Model == "" {
		cfg.Transcription.Model = defaults.Transcription.Model
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = defaults.Generation.Model
	}
	if cfg.Vision.Provider == "" {
		cfg.Vision.Provider = defaults.Vision.Provider
	}
	if cfg.Vision.Model == "" {
		if cfg.Vision.Provider == VisionProviderGemini {
			cfg.Vision.Model = "gemini-2.0-flash"
		} else {
			cfg.Vision.Model = defaults.Vision.Model
		}
	}

	if cfg.Vision.Provider != VisionProviderOpenAI && cfg.Vision.Provider != VisionProviderGemini {
		return nil, fmt.Errorf("unknown vision provider %q", cfg.Vision.Provider)
	}

	return cfg, nil
}
