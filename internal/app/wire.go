//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appconfig "github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/config"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/reporter"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

// InitializeApplication assembles the report pipeline, saver, and store from
// configuration.
func InitializeApplication(cfg *config.Settings, providers *appconfig.ProvidersConfig, logger *zap.Logger) (*reporter.Application, error) {
	wire.Build(
		provideOpenAIClient,
		provideTranscriber,
		provideCaptioner,
		provideGenerator,
		provideObjectStore,
		provideReportDAO,
		reporter.NewPipeline,
		reporter.NewSaver,
		reporter.NewApplication,
	)
	return nil, nil
}
