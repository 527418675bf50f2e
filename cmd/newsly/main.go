package main

import (
	"fmt"
	"os"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/cmd/newsly/cmd"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

func main() {
	// Missing .env files are fine; keys may be set system-wide.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
