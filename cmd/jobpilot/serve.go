package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/db"
	"github.com/jonathan/jobpilot/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves the scoring, classification, and tailoring endpoints over
HTTP. Stored job endpoints require a configured database URL.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8000)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := database.Migrate(context.Background()); err != nil {
			return err
		}
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	visa, parser := newClassifiers(cfg)

	srv := server.New(server.Config{
		Port:      cfg.Port,
		Database:  database,
		Scorer:    newScorer(cfg),
		Visa:      visa,
		Parser:    parser,
		Generator: generator,
	})

	return srv.Start()
}
