package reporter

import (
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
)

// Application bundles the assembled pipeline, saver, and report store for the
// transports (HTTP server, CLI) to consume.
type Application struct {
	Pipeline *Pipeline
	Saver    *Saver
	Reports  repository.ReportDAO
}

// NewApplication wires the application facade.
func NewApplication(pipeline *Pipeline, saver *Saver, reports repository.ReportDAO) *Application {
	return &Application{
		Pipeline: pipeline,
		Saver:    saver,
		Reports:  reports,
	}
}

// Close releases long-lived resources (the database handle).
func (a *Application) Close() error {
	return a.Reports.Close()
}
