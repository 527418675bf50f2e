// Package app assembles the application from configuration via wire.
package app

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api/gemini"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api/openai"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api/openai/chat"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api/openai/vision"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api/openai/whisper"
	appconfig "github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/config"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository/pg"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository/sqlite"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/storage"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

func provideOpenAIClient(cfg *config.Settings) *gopenai.Client {
	return openai.NewClient(cfg.OpenAIAPIKey)
}

func provideTranscriber(client *gopenai.Client, providers *appconfig.ProvidersConfig) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, providers.Transcription.Model)
}

func provideGenerator(client *gopenai.Client, providers *appconfig.ProvidersConfig) api.Generator {
	return chat.NewGenerator(client, providers.Generation.Model)
}

// provideCaptioner selects the vision backend: Gemini when requested and a
// key is present, the OpenAI multimodal model otherwise.
func provideCaptioner(cfg *config.Settings, providers *appconfig.ProvidersConfig, client *gopenai.Client) (api.Captioner, error) {
	if providers.Vision.Provider == appconfig.VisionProviderGemini {
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("vision provider %q requires GEMINI_API_KEY", appconfig.VisionProviderGemini)
		}
		return gemini.NewCaptioner(context.Background(), cfg.GeminiAPIKey, providers.Vision.Model)
	}
	return vision.NewCaptioner(client, providers.Vision.Model), nil
}

func provideObjectStore(cfg *config.Settings) (storage.ObjectStore, error) {
	return storage.NewMinioObjectStore(cfg)
}

// provideReportDAO selects the relational backend from the (normalized)
// database URL: Postgres for postgresql://, local SQLite otherwise.
func provideReportDAO(cfg *config.Settings) (repository.ReportDAO, error) {
	if cfg.IsPostgres() {
		return pg.NewPostgresDB(cfg.DatabaseURL)
	}
	return sqlite.NewSQLiteDB(cfg.SQLitePath())
}
