package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProvidersConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadProvidersConfig(filepath.Join(t.TempDir(), "providers.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
	assert.Equal(t, "gpt-4o", cfg.Generation.Model)
	assert.Equal(t, VisionProviderOpenAI, cfg.Vision.Provider)
}

func TestLoadProvidersConfig_PartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	content := `
vision:
  provider: gemini
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadProvidersConfig(path)
	require.NoError(t, err)

	assert.Equal(t, VisionProviderGemini, cfg.Vision.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Vision.Model)
	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
}

func TestLoadProvidersConfig_UnknownVisionProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vision:\n  provider: claude\n"), 0644))

	_, err := LoadProvidersConfig(path)
	assert.Error(t, err)
}
