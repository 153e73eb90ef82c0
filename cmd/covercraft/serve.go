package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/covercraft/internal/config"
	"github.com/jonathan/covercraft/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, cover letter generation, personalization, and export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := loadAppConfig(serveConfigPath)
	if err != nil {
		return err
	}

	// The key may be absent; generation endpoints then return 503 until it
	// is configured.
	apiKey := os.Getenv("GEMINI_API_KEY")

	srv, err := server.New(server.Config{
		Port:   servePort,
		APIKey: apiKey,
		App:    app,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadAppConfig loads the JSON config file when given, otherwise the defaults.
func loadAppConfig(path string) (*config.Config, error) {
	app := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		merged := loaded.MergeWithDefaults(*config.Default())
		app = &merged
	}
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return app, nil
}
