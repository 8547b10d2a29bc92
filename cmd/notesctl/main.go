// Command notesctl manages the meeting notes database and drives the API
// from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/client"
)

var (
	serverURL string
	apiToken  string
	timeout   time.Duration
	verbose   bool

	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Meeting notes command line tool",
	Long: `notesctl manages the meeting notes service.

  Schema:    notesctl migrate up | down | status
  Pipeline:  notesctl process ./meeting.webm --actions --export pdf --out notes.pdf
  Service:   notesctl health`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			cfg.Encoding = "console"
			logger, err = cfg.Build()
		}
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

// healthCmd checks the API is reachable.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the API health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		h, err := newClient().Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n", h.Service, h.Status, h.Version, h.Timestamp)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("NOTES_API_URL", "http://localhost:3001"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("NOTES_API_TOKEN"), "Bearer token for /api routes")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Minute, "Overall command timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newProcessCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *client.Client {
	return client.New(serverURL, client.WithToken(apiToken))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
